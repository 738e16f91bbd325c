package layout

import (
	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/reconciler"
	"github.com/rivo/uniseg"
)

// Solve lays out the whole graph for a terminal of the given size and
// records the resulting rects. If the layout is infeasible (e.g. a fixed
// size larger than the terminal) rects are clamped to the root's actual
// box rather than left negative or overflowing, per spec §7's "Layout
// infeasibility: recover, clamp to terminal rect" policy.
func (e *Engine) Solve(width, height int) {
	if e.root == "" {
		return
	}
	e.rects = map[reconciler.NodeKey]Rect{}
	e.elementRects = map[element.Id]Rect{}
	e.solveNode(e.root, Rect{X: 0, Y: 0, W: width, H: height})
}

func borderWidth(n *node) (top, right, bottom, left int) {
	if !n.style.BorderStyle.IsVisible() {
		return 0, 0, 0, 0
	}
	if n.style.BorderTop {
		top = 1
	}
	if n.style.BorderBottom {
		bottom = 1
	}
	if n.style.BorderLeft {
		left = 1
	}
	if n.style.BorderRight {
		right = 1
	}
	return
}

// intrinsic computes a node's unconstrained preferred size: text measures
// its display width via uniseg and a single row; a container sums (main
// axis) or maxes (cross axis) its relative children's intrinsic sizes,
// plus its own padding and border.
func (e *Engine) intrinsic(key reconciler.NodeKey) (w, h int) {
	n, ok := e.nodes[key]
	if !ok {
		return 0, 0
	}
	if n.kind == element.KindText {
		return uniseg.StringWidth(n.text), 1
	}

	bt, br, bb, bl := borderWidth(n)
	pad := n.style.Padding
	isRow := n.style.FlexDirection == element.Row || n.style.FlexDirection == element.RowReverse

	var mainSum, crossMax int
	gap := int(n.style.Gap)
	count := 0
	for _, ck := range n.children {
		child, ok := e.nodes[ck]
		if !ok || child.style.Position == element.PositionAbsolute {
			continue
		}
		cw, ch := e.intrinsic(ck)
		cw += int(child.style.Margin.Left + child.style.Margin.Right)
		ch += int(child.style.Margin.Top + child.style.Margin.Bottom)
		if isRow {
			mainSum += cw
			if ch > crossMax {
				crossMax = ch
			}
		} else {
			mainSum += ch
			if cw > crossMax {
				crossMax = cw
			}
		}
		count++
	}
	if count > 1 {
		mainSum += gap * (count - 1)
	}

	contentW, contentH := mainSum, crossMax
	if !isRow {
		contentW, contentH = crossMax, mainSum
	}

	w = contentW + int(pad.Left+pad.Right) + bl + br
	h = contentH + int(pad.Top+pad.Bottom) + bt + bb

	if n.style.Width.Kind == element.DimPoints {
		w = int(n.style.Width.Value)
	}
	if n.style.Height.Kind == element.DimPoints {
		h = int(n.style.Height.Value)
	}
	return w, h
}

func resolveDimension(d element.Dimension, available int, fallback int) int {
	switch d.Kind {
	case element.DimPoints:
		return int(d.Value)
	case element.DimPercent:
		return int(float64(available) * d.Value / 100.0)
	default:
		return fallback
	}
}

func (e *Engine) solveNode(key reconciler.NodeKey, rect Rect) {
	n, ok := e.nodes[key]
	if !ok {
		return
	}
	if root, ok := e.rects[e.root]; ok && key != e.root {
		if end := root.X + root.W; rect.X+rect.W > end {
			rect.W = end - rect.X
		}
		if end := root.Y + root.H; rect.Y+rect.H > end {
			rect.H = end - rect.Y
		}
	}
	if rect.W < 0 {
		rect.W = 0
	}
	if rect.H < 0 {
		rect.H = 0
	}
	e.rects[key] = rect
	e.elementRects[n.elemID] = rect

	if n.kind == element.KindText {
		return
	}

	bt, br, bb, bl := borderWidth(n)
	pad := n.style.Padding
	content := Rect{
		X: rect.X + bl + int(pad.Left),
		Y: rect.Y + bt + int(pad.Top),
		W: rect.W - bl - br - int(pad.Left+pad.Right),
		H: rect.H - bt - bb - int(pad.Top+pad.Bottom),
	}
	if content.W < 0 {
		content.W = 0
	}
	if content.H < 0 {
		content.H = 0
	}

	var relative, absolute []reconciler.NodeKey
	for _, ck := range n.children {
		child, ok := e.nodes[ck]
		if !ok {
			continue
		}
		if child.style.Position == element.PositionAbsolute {
			absolute = append(absolute, ck)
		} else {
			relative = append(relative, ck)
		}
	}

	e.layoutFlexChildren(relative, n, content)

	for _, ck := range absolute {
		child := e.nodes[ck]
		cw, ch := e.intrinsic(ck)
		x := content.X
		y := content.Y
		if child.style.Left != nil {
			x = content.X + int(*child.style.Left)
		}
		if child.style.Top != nil {
			y = content.Y + int(*child.style.Top)
		}
		e.solveNode(ck, Rect{X: x, Y: y, W: cw, H: ch})
	}
}

// layoutFlexChildren distributes content among relative children along the
// container's main axis and positions them on the cross axis, following
// the grow-with-remainder-redistribution and justify-content algorithm of
// other_examples/germtb-goli__layout.go's layoutFlexChildren, adapted to
// this package's Style and persistent-graph node types.
func (e *Engine) layoutFlexChildren(children []reconciler.NodeKey, parent *node, content Rect) {
	if len(children) == 0 {
		return
	}
	isRow := parent.style.FlexDirection == element.Row || parent.style.FlexDirection == element.RowReverse
	reversed := parent.style.FlexDirection == element.RowReverse || parent.style.FlexDirection == element.ColumnReverse

	availableMain, availableCross := content.W, content.H
	if !isRow {
		availableMain, availableCross = content.H, content.W
	}

	type measured struct {
		key               reconciler.NodeKey
		n                 *node
		mainSize, crossSize int
		marginMainBefore, marginMainAfter int
	}

	ms := make([]measured, len(children))
	totalMain := 0
	totalGrow := 0.0
	for i, ck := range children {
		n := e.nodes[ck]
		iw, ih := e.intrinsic(ck)
		var mainSize, crossSize int
		var marginBefore, marginAfter int
		if isRow {
			mainSize = resolveDimension(n.style.Width, availableMain, iw)
			crossSize = ih
			marginBefore, marginAfter = int(n.style.Margin.Left), int(n.style.Margin.Right)
		} else {
			mainSize = resolveDimension(n.style.Height, availableMain, ih)
			crossSize = iw
			marginBefore, marginAfter = int(n.style.Margin.Top), int(n.style.Margin.Bottom)
		}
		ms[i] = measured{key: ck, n: n, mainSize: mainSize, crossSize: crossSize, marginMainBefore: marginBefore, marginMainAfter: marginAfter}
		totalMain += mainSize + marginBefore + marginAfter
		if i > 0 {
			totalMain += int(parent.style.Gap)
		}
		if n.style.FlexGrow > 0 {
			totalGrow += n.style.FlexGrow
		}
	}

	extra := 0
	if totalGrow > 0 && availableMain > totalMain {
		extra = availableMain - totalMain
	}
	growShare := make([]int, len(ms))
	if extra > 0 {
		remaining := extra
		for i := range ms {
			if ms[i].n.style.FlexGrow > 0 {
				share := int(float64(extra) * ms[i].n.style.FlexGrow / totalGrow)
				growShare[i] = share
				remaining -= share
			}
		}
		for i := range ms {
			if remaining <= 0 {
				break
			}
			if ms[i].n.style.FlexGrow > 0 {
				growShare[i]++
				remaining--
			}
		}
	}

	mainPos := 0
	extraGap := 0.0
	switch parent.style.JustifyContent {
	case element.JustifyCenter:
		if availableMain > totalMain {
			mainPos = (availableMain - totalMain) / 2
		}
	case element.JustifyFlexEnd:
		if availableMain > totalMain {
			mainPos = availableMain - totalMain
		}
	case element.JustifySpaceBetween:
		if len(ms) > 1 {
			extraGap = float64(availableMain-totalMain) / float64(len(ms)-1)
		}
	case element.JustifySpaceAround:
		extraGap = float64(availableMain-totalMain) / float64(len(ms))
		mainPos = int(extraGap / 2)
	case element.JustifySpaceEvenly:
		extraGap = float64(availableMain-totalMain) / float64(len(ms)+1)
		mainPos = int(extraGap)
	}

	order := make([]int, len(ms))
	for i := range order {
		order[i] = i
	}
	if reversed {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	gap := int(parent.style.Gap)
	for _, i := range order {
		m := ms[i]
		mainSize := m.mainSize + growShare[i]

		crossPos := 0
		crossSize := m.crossSize
		align := parent.style.AlignItems
		if m.n.style.AlignSelf != nil {
			align = *m.n.style.AlignSelf
		}
		switch align {
		case element.AlignCenter:
			if availableCross > crossSize {
				crossPos = (availableCross - crossSize) / 2
			}
		case element.AlignFlexEnd:
			if availableCross > crossSize {
				crossPos = availableCross - crossSize
			}
		case element.AlignStretch:
			crossSize = availableCross
		case element.AlignFlexStart:
			// crossPos already 0, intrinsic size kept
		default:
			crossSize = availableCross
		}

		var x, y, w, h int
		if isRow {
			x = content.X + mainPos + m.marginMainBefore
			y = content.Y + crossPos
			w = mainSize
			h = crossSize
		} else {
			x = content.X + crossPos
			y = content.Y + mainPos + m.marginMainBefore
			w = crossSize
			h = mainSize
		}

		e.solveNode(m.key, Rect{X: x, Y: y, W: w, H: h})

		step := mainSize + m.marginMainBefore + m.marginMainAfter
		if extraGap != 0 {
			step += int(extraGap)
		} else {
			step += gap
		}
		mainPos += step
	}
}
