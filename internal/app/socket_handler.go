package app

import (
	"log"

	"github.com/trebletui/treble/internal/socket"
)

// handleSocketMessage processes messages received from the Unix socket
func (a *App) handleSocketMessage(msg socket.Message) {
	log.Printf("Received socket message: command=%s, text=%s", msg.Command, msg.Text)

	switch msg.Command {
	case socket.CommandSearch:
		a.filter.SetQuery(msg.Text)
		if msg.Text == "" {
			a.SetStatus("Filter cleared (remote)")
		} else {
			a.SetStatus("Filter applied (remote): " + msg.Text)
		}
	case socket.CommandReload:
		a.reloadLibrary()
	default:
		log.Printf("Unknown socket command: %s", msg.Command)
	}
}
