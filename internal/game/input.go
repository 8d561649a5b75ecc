package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input tracks previous key state so commands fire once per press.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// keyBindings maps physical keys to core commands. Arrow keys and WASD
// both steer; these are fixed (a key-binding UI is out of scope).
var keyBindings = []struct {
	key glfw.Key
	cmd Command
}{
	{glfw.KeyUp, CmdMoveUp},
	{glfw.KeyW, CmdMoveUp},
	{glfw.KeyDown, CmdMoveDown},
	{glfw.KeyS, CmdMoveDown},
	{glfw.KeyLeft, CmdMoveLeft},
	{glfw.KeyA, CmdMoveLeft},
	{glfw.KeyRight, CmdMoveRight},
	{glfw.KeyD, CmdMoveRight},
	{glfw.KeyP, CmdTogglePause},
	{glfw.KeyR, CmdRestart},
	{glfw.KeyQ, CmdQuit},
	{glfw.KeyEscape, CmdQuit},
}

// PollCommands returns the commands newly pressed this frame, in a
// stable order.
func (in *Input) PollCommands(window *glfw.Window) []Command {
	var cmds []Command
	for _, b := range keyBindings {
		if in.JustPressed(window, b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
