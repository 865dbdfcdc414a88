package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
// Arrow keys and screen zone clicks are direction-dependent and handled by
// the mode adapter, not by this table.
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"KeyQ"}, []string{}, "Quit application"},
	{"close", []string{"Escape", "KeyW"}, []string{}, "Close document and return to start screen"},
	{"help", []string{"Shift+Slash", "F1"}, []string{"Alt+RightClick"}, "Show/hide help"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide info display"},
	{"next", []string{"Space", "KeyN", "PageDown"}, []string{"WheelDown"}, "Next spread"},
	{"previous", []string{"Backspace", "KeyP", "PageUp"}, []string{"WheelUp"}, "Previous spread"},
	{"toggle_offset", []string{"KeyB"}, []string{"MiddleClick"}, "Shift spread alignment by one page"},
	{"bookmark", []string{"KeyM"}, []string{}, "Toggle bookmark on current spread"},
	{"thumbnails", []string{"KeyT"}, []string{"Ctrl+RightClick"}, "Show/hide thumbnail navigator"},
	{"fullscreen", []string{"Enter", "F11"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},
	{"page_input", []string{"KeyG"}, []string{"Ctrl+LeftClick"}, "Go to spread (enter spread number)"},
	{"jump_first", []string{"Home", "Shift+Comma"}, []string{}, "Jump to first spread"},
	{"jump_last", []string{"End", "Shift+Period"}, []string{}, "Jump to last spread"},
	{"cycle_sort", []string{"Shift+KeyS"}, []string{"Alt+MiddleClick"}, "Cycle sort method (Natural/Simple/Entry)"},
}

// ActionExecutor provides centralized action execution logic
// This eliminates the need for duplicate ExecuteAction implementations
// in both KeybindingManager and MousebindingManager
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
// This is the single source of truth for all action execution logic
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "close":
		inputActions.CloseDocument()
	case "help":
		inputActions.ToggleHelp()
	case "info":
		inputActions.ToggleInfo()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "toggle_offset":
		inputActions.ToggleOffset()
	case "bookmark":
		inputActions.ToggleBookmark()
	case "thumbnails":
		inputActions.ToggleThumbnails()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "page_input":
		if !inputState.IsInPageInputMode() {
			inputActions.EnterPageInputMode()
		}
	case "jump_first":
		inputActions.JumpToSpread(1)
	case "jump_last":
		spreadCount := inputActions.GetSpreadCount()
		if spreadCount > 0 {
			inputActions.JumpToSpread(spreadCount)
		}
	case "cycle_sort":
		inputActions.CycleSortMethod()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
