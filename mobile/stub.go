//go:build !mobile

// 普通桌面构建下 mobile 包只保留 Dummy，
// ebitenmobile 绑定入口在 mobile.go 中，需要 -tags mobile。
package mobile

// Dummy 让包在没有 mobile 标签时仍可被引用
func Dummy() {}
