package puzzle

// Player feeds a queue of moves to a cube, issuing the next one each
// time the cube is idle.
type Player struct {
	cube  *Cube
	queue []Move
}

// NewPlayer creates a player for cube.
func NewPlayer(cube *Cube) *Player {
	return &Player{cube: cube}
}

// Enqueue appends moves to the queue.
func (p *Player) Enqueue(moves ...Move) {
	p.queue = append(p.queue, moves...)
}

// Pending returns the number of moves not yet issued.
func (p *Player) Pending() int {
	return len(p.queue)
}

// Done reports whether every move was issued and the cube has settled.
func (p *Player) Done() bool {
	return len(p.queue) == 0 && !p.cube.IsAnimating()
}

// Clear drops all queued moves. A turn already in flight completes.
func (p *Player) Clear() {
	p.queue = p.queue[:0]
}

// Reset resets the cube and drops the queue. While a turn is in flight
// it returns ErrBusy and keeps the queue.
func (p *Player) Reset() error {
	if err := p.cube.Reset(); err != nil {
		return err
	}
	p.Clear()
	return nil
}

// Tick issues the next move if the cube is idle. A rejected move stays
// at the head of the queue; an invalid one is dropped.
func (p *Player) Tick() {
	if len(p.queue) == 0 || p.cube.IsAnimating() {
		return
	}
	switch err := p.cube.Apply(p.queue[0]); err {
	case nil, ErrInvalidMove:
		p.queue = p.queue[1:]
	}
}

// Run plays the whole queue to completion without a frame loop and
// returns the number of ticks spent.
func (p *Player) Run() int {
	ticks := 0
	for !p.Done() {
		p.Tick()
		ticks += p.cube.Settle()
	}
	return ticks
}
