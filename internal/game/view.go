package game

// CellView is the JSON form of a Cell.
type CellView struct {
	Letter string         `json:"letter"`
	Mark   Classification `json:"mark"`
}

// View is a read-only snapshot of a session for renderers and the HTTP API.
type View struct {
	GameID  string                    `json:"gameId"`
	Status  Status                    `json:"status"`
	Row     int                       `json:"row"`
	Col     int                       `json:"col"`
	Cells   [Rows][Cols]CellView      `json:"cells"`
	Keys    map[string]Classification `json:"keys"`
	Guesses []string                  `json:"guesses"`
	Message string                    `json:"message,omitempty"`
	Signal  string                    `json:"signal,omitempty"`
	Secret  string                    `json:"secret,omitempty"` // only when lost
}

// Snapshot captures the session, attaching msg if it carries a signal.
func (s *Session) Snapshot(msg Message) View {
	v := View{
		GameID:  s.ID,
		Status:  s.status,
		Row:     s.row,
		Col:     s.col,
		Keys:    s.keys.Snapshot(),
		Guesses: s.Guesses(),
		Message: msg.Text(),
		Signal:  msg.Signal.String(),
	}
	for r := range s.grid {
		for c, cell := range s.grid[r] {
			cv := CellView{Mark: cell.Mark}
			if cell.Letter != Empty {
				cv.Letter = string(cell.Letter)
			}
			v.Cells[r][c] = cv
		}
	}
	if secret, ok := s.Revealed(); ok {
		v.Secret = secret
	}
	return v
}
