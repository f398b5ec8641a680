package model

// Command names a structural list operation.
type Command string

// Available commands.
const (
	CommandToggle    Command = "toggle"
	CommandWrap      Command = "wrap"
	CommandUnwrap    Command = "unwrap"
	CommandIndent    Command = "indent"
	CommandOutdent   Command = "outdent"
	CommandNormalize Command = "normalize"
)

// Commands lists every command in display order.
var Commands = []Command{
	CommandToggle,
	CommandWrap,
	CommandUnwrap,
	CommandIndent,
	CommandOutdent,
	CommandNormalize,
}

// Action records what a command ended up doing.
type Action string

// Possible actions.
const (
	ActionNoop      Action = "noop"
	ActionWrap      Action = "wrap"
	ActionUnwrap    Action = "unwrap"
	ActionEqualize  Action = "equalize"
	ActionIndent    Action = "indent"
	ActionOutdent   Action = "outdent"
	ActionNormalize Action = "normalize"
)

// Outcome summarizes a structural edit. Counts are taken before
// normalization, so a new list later merged into an adjacent one still
// counts as created.
type Outcome struct {
	Action Action
	Lists  int // lists created or removed
	Items  int // items created, unwrapped or moved
}

// Changed reports whether the edit did anything.
func (o Outcome) Changed() bool {
	return o.Action != ActionNoop
}

// FileResult is the result of applying a command to one document file.
type FileResult struct {
	Path    FilePath
	Command Command
	Outcome Outcome
	Err     error
}
