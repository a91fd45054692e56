package app

// Playground is the in-process selector playground model.
type Playground struct {
	open bool
}

func (p *Playground) IsOpen() bool { return p.open }

// ToggleOpen flips the open flag.
func (p *Playground) ToggleOpen() { p.open = !p.open }
