package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/pickleplanner/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		o.printf("%s\n", msg)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case []response.Player:
		o.printPlayers(v)
	case response.Preview:
		o.printPreview(v)
	case response.Session:
		o.printSession(v)
	case []response.SessionSummary:
		o.printSessionSummaries(v)
	case response.Match:
		o.printMatch(v)
	case response.MatchResult:
		o.printMatchResult(v)
	case []response.MatchRecord:
		o.printMatchRecords(v)
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	o.printf("Player: %s (%s)\n", p.Name, p.ID)
	o.printf("Gender: %s\n", p.Gender)
	o.printf("Score: %.2f\n", p.Score)
	if p.AvatarURL != "" {
		o.printf("Avatar: %s\n", p.AvatarURL)
	}
}

func (o *Output) printPlayers(players []response.Player) {
	if len(players) == 0 {
		o.printf("No players\n")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tGENDER\tSCORE")
	for _, p := range players {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Gender, p.Score)
	}
	_ = tw.Flush()
}

func (o *Output) printPreview(p response.Preview) {
	o.printf("Matches: %d of %d requested\n", len(p.Matches), p.RequestedMatches)
	for _, m := range p.Matches {
		o.printMatchLine(m)
	}
	if len(p.Participation) > 0 {
		o.printf("\nParticipation:\n")
		tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "  PLAYER\tMATCHES\tMAX IN A ROW\tTEAMMATES")
		for _, pt := range p.Participation {
			_, _ = fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\n", pt.Name, pt.Matches, pt.MaxConsecutive, pt.Teammates)
		}
		_ = tw.Flush()
	}
}

func (o *Output) printSession(s response.Session) {
	o.printf("Session: %s (%s)\n", s.Name, s.ID)
	o.printf("Status: %s\n", s.Status)
	o.printf("Length: %d min, %d min matches\n", s.SessionMinutes, s.MatchMinutes)
	if s.Truncated {
		o.printf("Matches: %d (shorter than the %d requested)\n", len(s.Matches), s.RequestedMatches)
	} else {
		o.printf("Matches: %d\n", len(s.Matches))
	}
	for _, m := range s.Matches {
		o.printMatchLine(m)
	}
}

func (o *Output) printSessionSummaries(sessions []response.SessionSummary) {
	if len(sessions) == 0 {
		o.printf("No sessions\n")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tPLAYERS\tPLAYED")
	for _, s := range sessions {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d/%d\n", s.ID, s.Name, s.Status, s.PlayerCount, s.Completed, s.MatchCount)
	}
	_ = tw.Flush()
}

func (o *Output) printMatch(m response.Match) {
	o.printMatchLine(m)
}

func (o *Output) printMatchLine(m response.Match) {
	line := fmt.Sprintf("  #%d  %s  vs  %s  (diff %.2f)", m.Number, teamNames(m.Team1), teamNames(m.Team2), m.ScoreDifference)
	switch {
	case m.Team1Points != nil && m.Team2Points != nil:
		line += fmt.Sprintf("  %d-%d", *m.Team1Points, *m.Team2Points)
	case m.Status != "":
		line += "  [" + m.Status + "]"
	}
	o.printf("%s\n", line)
}

func (o *Output) printMatchResult(r response.MatchResult) {
	o.printMatchLine(r.Match)
	if r.Match.Winner != nil {
		o.printf("Winner: %s\n", *r.Match.Winner)
	} else {
		o.printf("Tie, ratings unchanged\n")
	}
	for _, c := range r.ScoreChanges {
		o.printf("  %s: %+d\n", c.PlayerID, c.Change)
	}
	o.printf("Session: %s\n", r.SessionStatus)
}

func (o *Output) printMatchRecords(records []response.MatchRecord) {
	if len(records) == 0 {
		o.printf("No matches\n")
		return
	}
	for _, r := range records {
		o.printf("%s (%s)\n", r.SessionName, r.SessionID)
		o.printMatchLine(r.Match)
	}
}

func teamNames(t response.Team) string {
	names := make([]string, len(t.Players))
	for i, p := range t.Players {
		names[i] = p.Name
	}
	return strings.Join(names, " & ")
}
