package httpapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

type scorecardData struct {
	SessionID  string
	PlayerName string
	Mode       entities.Mode
	Score      int
	Attempts   int
	BestStreak int
	Date       time.Time
}

func renderScorecard(data scorecardData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, "Car Trivia Score Card", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, data.Mode.Title(), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, data.PlayerName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Correct answers", "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d of %d (%.0f%%)", data.Score, data.Attempts, pct(data.Score, data.Attempts)), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Best streak", "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d", data.BestStreak), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, data.Date.Format("2006-01-02"), "1", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Session ID: "+data.SessionID, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render scorecard: %w", err)
	}
	return buf.Bytes(), nil
}

func pct(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) * 100 / float64(b)
}
