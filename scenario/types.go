package scenario

// CellSpec is the YAML representation of a dstarlite.Cell.
type CellSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Connectivity selects the Planner's action set.
type Connectivity string

const (
	ConnectivityFour  Connectivity = "four"
	ConnectivityEight Connectivity = "eight"
)

// OpKind names a script step's operation.
type OpKind string

const (
	OpStep       OpKind = "step"
	OpBlock      OpKind = "block"
	OpClear      OpKind = "clear"
	OpToggle     OpKind = "toggle"
	OpReplaceMap OpKind = "replace_map"
)

// Step is one ordered script entry. Cell is meaningful for block, clear, and
// toggle; Rows is meaningful for replace_map; step uses neither.
type Step struct {
	Op   OpKind    `yaml:"op"`
	Cell *CellSpec `yaml:"cell"`
	Rows [][]bool  `yaml:"rows"`
}

// Scenario is the fully decoded, bounds-validated contents of a scenario
// YAML document.
type Scenario struct {
	Rows         int          `yaml:"rows"`
	Cols         int          `yaml:"cols"`
	Start        CellSpec     `yaml:"start"`
	Goal         CellSpec     `yaml:"goal"`
	Connectivity Connectivity `yaml:"connectivity"`
	Blocked      []CellSpec   `yaml:"blocked"`
	Script       []Step       `yaml:"script"`
}
