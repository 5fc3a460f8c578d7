// embed.go - 默认配置嵌入声明
package main

import _ "embed"

//go:embed data/cerise.yaml
var defaultConfig []byte
