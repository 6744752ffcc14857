package maze

import "fmt"

// State is the controller's lifecycle position.
type State int

const (
	Idle       State = iota // not generated yet
	Carving                 // building, placing, carving, stitching
	Validating              // solving every entrance/exit pair
	Retrying                // attempt rejected, grid discarded
	Done                    // maze accepted
	Failed                  // attempt budget exhausted or aborted
)

var stateNames = [...]string{"idle", "carving", "validating", "retrying", "done", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}
