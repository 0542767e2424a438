package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doismellburning/chess/internal/cli"
	"github.com/doismellburning/chess/internal/core"
	"github.com/doismellburning/chess/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	for {
		cmd, err := h.view.GetCommand(h.getPrompt())
		if err != nil {
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			// Always show whose turn it is
			prompt = fmt.Sprintf("[%c]> ", g.NextTurn())
			if g.NextPlayer().Type == core.PlayerComputer {
				prompt = "ENTER to execute computer move\n" + prompt
			}
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Empty command triggers computer move if it's computer's turn
		if h.gameID != "" {
			g, err := h.svc.GetGame(h.gameID)
			if err == nil && g.State() == core.StateOngoing &&
				g.NextPlayer().Type == core.PlayerComputer {
				h.executeComputerMove()
			}
		}
		return true

	case cli.CmdNew:
		return h.handleNewGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		return h.handleNewGame(strings.Join(cmd.Args, " "))

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
			return true
		}

		g, _ := h.svc.GetGame(h.gameID)
		if g.NextPlayer().Type != core.PlayerHuman {
			h.view.ShowMessage("It's not a human player's turn. Press ENTER to execute computer move.")
			return true
		}

		result, err := h.svc.MakeHumanMove(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		h.view.ShowHumanMove(result.Move)

		state, _ := h.svc.CurrentState(h.gameID)
		h.view.DisplayBoard(state)
		h.view.ShowCheck(state)

		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
			h.gameID = ""
		}

	case cli.CmdMoves:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: moves <square>  (e.g., moves e2)")
			return true
		}

		dests, err := h.svc.LegalDestinations(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		if len(dests) == 0 {
			h.view.ShowMessage(fmt.Sprintf("No legal moves from %s", cmd.Args[0]))
		} else {
			h.view.ShowMessage(fmt.Sprintf("%s can move to: %s", cmd.Args[0], strings.Join(dests, " ")))
		}

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.Undo(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}

			state, _ := h.svc.CurrentState(h.gameID)
			h.view.DisplayBoard(state)
		}

	case cli.CmdFEN:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		state, _ := h.svc.CurrentState(h.gameID)
		h.view.ShowMessage(state.FEN())

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			if h.gameID != "" {
				state, _ := h.svc.CurrentState(h.gameID)
				h.view.DisplayBoard(state)
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) executeComputerMove() {
	result, err := h.svc.MakeComputerMove(h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("computer move failed: %v", err))
		return
	}

	h.view.ShowComputerMove(result)
	state, _ := h.svc.CurrentState(h.gameID)
	h.view.DisplayBoard(state)
	h.view.ShowCheck(state)

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// Starts a new game with player type selection
func (h *CLIHandler) handleNewGame(fen string) bool {
	whiteConfig := core.PlayerConfig{Type: h.askPlayerType("White")}
	blackConfig := core.PlayerConfig{Type: h.askPlayerType("Black")}

	gameID := h.svc.GenerateGameID()
	var fenArgs []string
	if fen != "" {
		fenArgs = []string{fen}
	}

	if err := h.svc.NewGame(gameID, whiteConfig, blackConfig, fenArgs...); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return true
	}

	h.gameID = gameID
	h.view.ShowMessage("Game started.")
	state, _ := h.svc.CurrentState(h.gameID)
	h.view.DisplayBoard(state)

	return true
}

func (h *CLIHandler) askPlayerType(seat string) core.PlayerType {
	input := h.view.Ask(fmt.Sprintf("Select %s player (h/c): ", seat))
	if input == "c" || input == "computer" {
		return core.PlayerComputer
	}
	return core.PlayerHuman
}
