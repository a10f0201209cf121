package device

// Sim is an in-memory machine exposing the video state the scroll engine
// touches. It counts register writes so callers can verify that nothing
// was written.
type Sim struct {
	screen Screen
	scroll ScrollRegister
	border Color

	Raster *Raster

	scrollWrites int
	borderWrites int
	charWrites   int
}

// NewSim returns a powered-on device: blank screen, black border, 40x25
// display, raster interrupt at the bottom border.
func NewSim() *Sim {
	s := &Sim{
		scroll: ScrollRegister{FineY: RestFineY},
		Raster: NewRaster(BottomBorderLine),
	}
	s.screen.Fill(0x20)
	return s
}

func (s *Sim) Screen() *Screen { return &s.screen }

// SetChar writes one cell of the character matrix.
func (s *Sim) SetChar(row, col int, code byte) {
	s.screen.Set(row, col, code)
	s.charWrites++
}

func (s *Sim) Scroll() ScrollRegister { return s.scroll }

func (s *Sim) SetScroll(r ScrollRegister) {
	s.scroll = r
	s.scrollWrites++
}

func (s *Sim) Border() Color { return s.border }

func (s *Sim) SetBorder(c Color) {
	s.border = c
	s.borderWrites++
}

// ScrollWrites returns how many times the scroll register was written.
func (s *Sim) ScrollWrites() int { return s.scrollWrites }

// BorderWrites returns how many times the border colour was written.
func (s *Sim) BorderWrites() int { return s.borderWrites }

// CharWrites returns how many cells were written through SetChar. Bulk
// moves of the matrix are not counted.
func (s *Sim) CharWrites() int { return s.charWrites }
