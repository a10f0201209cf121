package device

// RestFineY is the vertical fine scroll the KERNAL leaves in $D011.
const RestFineY = 3

// ScrollRegister is the scroll state of $D011/$D016.
type ScrollRegister struct {
	FineX, FineY uint8 // 0..7 pixels

	// Columns38 and Rows24 select the narrow display window that hides
	// the partially scrolled edge cells.
	Columns38 bool
	Rows24    bool

	// CoarseX and CoarseY flip each time the fine offset wraps past a cell.
	CoarseX bool
	CoarseY bool
}

// Ctrl1 packs the vertical half in $D011 layout with the display enabled.
func (r ScrollRegister) Ctrl1() byte {
	v := byte(0x10) | r.FineY&7
	if !r.Rows24 {
		v |= 0x08
	}
	return v
}

// Ctrl2 packs the horizontal half in $D016 layout.
func (r ScrollRegister) Ctrl2() byte {
	v := r.FineX & 7
	if !r.Columns38 {
		v |= 0x08
	}
	return v
}

// Advance moves the fine offsets by px, py pixels of view motion. The
// picture moves against the view, so a positive step lowers the offset.
func (r ScrollRegister) Advance(px, py int) ScrollRegister {
	r.FineX, r.CoarseX = advance(r.FineX, r.CoarseX, px)
	r.FineY, r.CoarseY = advance(r.FineY, r.CoarseY, py)
	return r
}

// Step applies one whole-cell move per non-zero axis.
func (r ScrollRegister) Step(dx, dy int) ScrollRegister {
	return r.Advance(dx*CellPixels, dy*CellPixels)
}

func advance(fine uint8, coarse bool, px int) (uint8, bool) {
	if px == 0 {
		return fine, coarse
	}
	v := int(fine) - px
	if v < 0 || v > 7 {
		coarse = !coarse
	}
	return uint8(v & 7), coarse
}
