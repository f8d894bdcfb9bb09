package cli

// CommandHandler defines the interface for command handling
type CommandHandler interface {
	Handle(args []string) string
}

// HelpCommand handles the "/help" command
type HelpCommand struct{}

func (h *HelpCommand) Handle(args []string) string {
	return "Paste SQL or source code, then submit an empty line to analyze it. Type '/end' to exit."
}

// EndCommand handles the "/end" command
type EndCommand struct{}

func (e *EndCommand) Handle(args []string) string {
	return "Goodbye!"
}

// UnsupportedCommand handles unknown commands
type UnsupportedCommand struct{}

func (u *UnsupportedCommand) Handle(args []string) string {
	return "unsupported command, try /help"
}

// CommandRegistry manages available commands
type CommandRegistry struct {
	commands map[string]CommandHandler
}

func NewCommandRegistry() *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]CommandHandler),
	}

	// Register available commands
	registry.commands["/help"] = &HelpCommand{}
	registry.commands["/end"] = &EndCommand{}

	return registry
}

func (cr *CommandRegistry) Execute(command string) (string, bool) {
	if handler, exists := cr.commands[command]; exists {
		return handler.Handle(nil), command == "/end"
	}

	unsupported := &UnsupportedCommand{}
	return unsupported.Handle(nil), false
}
