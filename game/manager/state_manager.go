package manager

// Status is the coarse game state
type Status int

const (
	Running Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Outcome says why a game reached Over
type Outcome int

const (
	Undecided Outcome = iota
	Collided
	Won
	Quit // Player left before the game ended
)

func (o Outcome) String() string {
	switch o {
	case Collided:
		return "collided"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return "undecided"
	}
}

// StateManager tracks score, ticks and the one-way Running to Over transition
type StateManager struct {
	status  Status
	outcome Outcome
	score   int
	ticks   uint64
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Status() Status {
	return sm.status
}

func (sm *StateManager) Outcome() Outcome {
	return sm.outcome
}

func (sm *StateManager) IsOver() bool {
	return sm.status == Over
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Ticks() uint64 {
	return sm.ticks
}

// AddPoint increments the score by one eaten food
func (sm *StateManager) AddPoint() {
	sm.score++
}

// Tick counts one processed update
func (sm *StateManager) Tick() {
	sm.ticks++
}

// Finish moves the game to Over. Later calls keep the first outcome.
func (sm *StateManager) Finish(outcome Outcome) bool {
	if sm.status == Over {
		return false
	}
	sm.status = Over
	sm.outcome = outcome
	return true
}
