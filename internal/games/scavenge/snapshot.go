package scavenge

// Snapshot is a primitive summary of the simulation state, used by tests to
// assert on state without reaching into manager internals. Positions are
// world-unit thousandths so float positions compare exactly.
type Snapshot struct {
	Tick    int64
	Score   int
	PlayerX int64
	PlayerY int64
	HP      int
	Driving bool

	Enemies     int
	EnemiesDead int
	Items       int
	Cars        int
	Shots       int
}

func milli(f float64) int64 {
	return int64(f * 1000)
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    int64(g.now),
		Score:   g.score,
		PlayerX: milli(g.player.Pos.X),
		PlayerY: milli(g.player.Pos.Y),
		HP:      g.player.HP,
		Items:   len(g.items.Ground),
		Shots:   len(g.shots.Shots),
	}
	if _, ok := g.cars.Get(g.player.Vehicle); ok {
		s.Driving = true
	}
	for _, e := range g.enemies.Enemies {
		s.Enemies++
		if e.Dead() {
			s.EnemiesDead++
		}
	}
	for _, car := range g.cars.Cars {
		if car != nil {
			s.Cars++
		}
	}
	return s
}

// Hash folds the full simulation state, entity positions included, into a
// single value. Two runs with the same seed and input sequence must produce
// identical hashes tick for tick.
func (g *Game) Hash() uint64 {
	var h uint64 = 1

	fold := func(v int64) {
		h = h*31 + uint64(v)
	}

	fold(int64(g.now))
	fold(int64(g.score))
	fold(int64(g.phase))
	fold(milli(g.player.Pos.X))
	fold(milli(g.player.Pos.Y))
	fold(int64(g.player.HP))

	for _, e := range g.enemies.Enemies {
		fold(milli(e.Pos.X))
		fold(milli(e.Pos.Y))
		fold(int64(e.HP))
		fold(int64(e.State))
	}
	for _, it := range g.items.Ground {
		fold(milli(it.Pos.X))
		fold(milli(it.Pos.Y))
		fold(int64(it.Category))
	}
	for _, car := range g.cars.Cars {
		if car == nil {
			fold(-1)
			continue
		}
		fold(milli(car.Pos.X))
		fold(milli(car.Pos.Y))
		fold(milli(car.Speed))
		fold(milli(car.Angle))
	}
	for _, p := range g.shots.Shots {
		fold(milli(p.Pos.X))
		fold(milli(p.Pos.Y))
		fold(milli(p.Travelled))
	}
	return h
}
