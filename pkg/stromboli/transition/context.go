package transition

// Scene describes one entry of the screen stack as seen by the external
// transition state machine.
type Scene struct {
	Index    int    // position in the stack, bottom is 0
	Route    string // route name of the scene
	IsActive bool   // whether this scene is the navigation target
}

// Context is the per-tick view of one side of a transition, supplied by the
// external state machine that owns progress and interruption.
type Context struct {
	Route    string  // route this context belongs to
	Progress float64 // transition completion in [0, 1]
	Scene    Scene
}
