package ws

import (
	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/session"
)

// Request types sent by the client.
const (
	TypeMove  = "move"
	TypeReset = "reset"
	TypeNew   = "new"
)

// Response types sent by the server.
const (
	TypeState = "state"
	TypeError = "error"
)

// Request is a client message.
type Request struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// Spawned describes the tile added by the last move.
type Spawned struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// Response is a server message: the full game state, or an error.
type Response struct {
	Type    string   `json:"type"`
	ID      string   `json:"id,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Cells   []int    `json:"cells,omitempty"`
	Moves   int      `json:"moves"`
	MaxTile int      `json:"max_tile,omitempty"`
	Stuck   bool     `json:"stuck"`
	Changed bool     `json:"changed"`
	Spawned *Spawned `json:"spawned,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func stateResponse(st session.State) Response {
	return Response{
		Type:    TypeState,
		ID:      st.ID,
		Width:   st.Width,
		Height:  st.Height,
		Cells:   st.Cells,
		Moves:   st.Moves,
		MaxTile: st.MaxTile,
		Stuck:   st.Stuck,
	}
}

func moveResponse(res board.MoveResult, st session.State) Response {
	resp := stateResponse(st)
	resp.Changed = res.Changed
	if res.Spawned {
		resp.Spawned = &Spawned{Index: res.SpawnAt, Value: int(res.SpawnTile)}
	}
	return resp
}

func errorResponse(msg string) Response {
	return Response{Type: TypeError, Error: msg}
}
