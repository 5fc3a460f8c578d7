package app

// ResizeDebouncer 合并连续的窗口尺寸变化
//
// 每次 Notify 都会重置倒计时；安静 quietTicks 个 tick 之后，Tick 交付最后一次的尺寸，
// 每个安静期最多交付一次。状态由 App 持有并在事件处理中显式传递，不使用全局变量。
type ResizeDebouncer struct {
	quietTicks int
	remaining  int
	pending    bool
	width      int
	height     int
}

// NewResizeDebouncer 创建防抖器
// quietTicks 为 0 时在下一次 Tick 立即交付
func NewResizeDebouncer(quietTicks int) *ResizeDebouncer {
	if quietTicks < 0 {
		quietTicks = 0
	}
	return &ResizeDebouncer{quietTicks: quietTicks}
}

// Notify 记录一次尺寸变化并重新开始倒计时
func (d *ResizeDebouncer) Notify(width, height int) {
	d.width = width
	d.height = height
	d.pending = true
	d.remaining = d.quietTicks
}

// Pending 是否有尚未交付的尺寸变化
func (d *ResizeDebouncer) Pending() bool {
	return d.pending
}

// Tick 推进一个 tick
//
// 返回：
//   - width, height: 合并后的尺寸
//   - ok: 本次 tick 是否交付了尺寸变化
func (d *ResizeDebouncer) Tick() (width, height int, ok bool) {
	if !d.pending {
		return 0, 0, false
	}
	if d.remaining > 0 {
		d.remaining--
		return 0, 0, false
	}
	d.pending = false
	return d.width, d.height, true
}
