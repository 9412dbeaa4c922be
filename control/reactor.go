package control

// Reactor publishes control snapshots and turns special-gesture edges into scene changes
// The coupling gesture -> heart + accent colour lives here, outside the motion engine
type Reactor struct {
	store *Store
	scene *Scene

	// OnCelebrate runs after a rising edge actually entered the celebration
	OnCelebrate func()
}

func NewReactor(store *Store, scene *Scene) *Reactor {
	return &Reactor{store: store, scene: scene}
}

// Publish stores next and reacts to a special-gesture transition
func (r *Reactor) Publish(next State) {
	prev := r.store.Swap(next)
	if prev.SpecialGesture == next.SpecialGesture {
		return
	}
	if r.scene.SetCelebration(next.SpecialGesture) && next.SpecialGesture && r.OnCelebrate != nil {
		r.OnCelebrate()
	}
}
