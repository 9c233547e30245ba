package problem

// CreateInput holds the raw fields of a new problem as supplied by a caller.
// Level is level text and is parsed case-insensitively.
type CreateInput struct {
	Name  string
	URL   *string
	Tags  []string
	Memo  string
	Level string
}
