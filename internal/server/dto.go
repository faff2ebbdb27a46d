package server

import (
	"time"

	"github.com/vanshika/oraculo/internal/astrology"
	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/service"
)

// --- Request & Response DTOs ---

type numerologyRequest struct {
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
}

type astrologyRequest struct {
	BirthDate    string `json:"birthDate"`
	BirthTime    string `json:"birthTime"`
	BirthCity    string `json:"birthCity"`
	BirthCountry string `json:"birthCountry"`
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type numberMeaningResponse struct {
	Number  int    `json:"number"`
	Meaning string `json:"meaning"`
}

type numerologyInterpretationsResponse struct {
	DestinyNumber   string                  `json:"destinyNumber"`
	Pyramid         string                  `json:"pyramid"`
	DetailedNumbers []numberMeaningResponse `json:"detailedNumbers"`
}

type consecutivePatternResponse struct {
	Number  int    `json:"number"`
	Count   int    `json:"count"`
	Meaning string `json:"meaning"`
}

type numerologyResponse struct {
	FullName            string                            `json:"fullName"`
	Pyramid             [][]int                           `json:"pyramid"`
	NameLetters         []string                          `json:"nameLetters"`
	DestinyNumber       int                               `json:"destinyNumber"`
	Interpretations     numerologyInterpretationsResponse `json:"interpretations"`
	ConsecutivePatterns []consecutivePatternResponse      `json:"consecutivePatterns"`
	ReadingID           string                            `json:"readingId,omitempty"`
}

type positionResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type planetResponse struct {
	Name     string           `json:"name"`
	Sign     string           `json:"sign"`
	Position positionResponse `json:"position"`
}

type signsResponse struct {
	Sun       string `json:"sun"`
	Moon      string `json:"moon"`
	Ascendant string `json:"ascendant"`
}

type astrologyInterpretationsResponse struct {
	Sun                string `json:"sun"`
	Moon               string `json:"moon"`
	Ascendant          string `json:"ascendant"`
	FullInterpretation string `json:"fullInterpretation"`
}

type astrologyResponse struct {
	Planets         []planetResponse                 `json:"planets"`
	Signs           signsResponse                    `json:"signs"`
	Interpretations astrologyInterpretationsResponse `json:"interpretations"`
	ReadingID       string                           `json:"readingId,omitempty"`
}

type traitResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type readingResponse struct {
	ReadingID    string          `json:"readingId"`
	Kind         string          `json:"kind"`
	Subject      string          `json:"subject,omitempty"`
	BirthDate    string          `json:"birthDate"`
	BirthTime    string          `json:"birthTime,omitempty"`
	BirthCity    string          `json:"birthCity,omitempty"`
	BirthCountry string          `json:"birthCountry,omitempty"`
	Traits       []traitResponse `json:"traits"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}

type listReadingsResponse struct {
	Items      []readingResponse      `json:"items"`
	Pagination service.PaginationMeta `json:"pagination"`
}

type sharedTraitResponse struct {
	Type       string   `json:"type"`
	Value      string   `json:"value"`
	ReadingIDs []string `json:"readingIds"`
}

type affinitiesResponse struct {
	ReadingID    string                `json:"readingId"`
	SharedTraits []sharedTraitResponse `json:"sharedTraits"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func newNumerologyResponse(res service.NumerologyResult) numerologyResponse {
	reading := res.Reading
	resp := numerologyResponse{
		FullName:      reading.FullName,
		Pyramid:       reading.Pyramid,
		NameLetters:   reading.Letters,
		DestinyNumber: reading.DestinyNumber,
		Interpretations: numerologyInterpretationsResponse{
			DestinyNumber:   reading.Interpretations.Destiny,
			Pyramid:         reading.Interpretations.Pyramid,
			DetailedNumbers: make([]numberMeaningResponse, 0, len(reading.Interpretations.Detailed)),
		},
		ConsecutivePatterns: make([]consecutivePatternResponse, 0, len(reading.Repetitions)),
		ReadingID:           res.ReadingID,
	}
	if resp.Pyramid == nil {
		resp.Pyramid = [][]int{}
	}
	if resp.NameLetters == nil {
		resp.NameLetters = []string{}
	}
	for _, m := range reading.Interpretations.Detailed {
		resp.Interpretations.DetailedNumbers = append(resp.Interpretations.DetailedNumbers, numberMeaningResponse{
			Number:  m.Number,
			Meaning: m.Meaning,
		})
	}
	for _, rep := range reading.Repetitions {
		resp.ConsecutivePatterns = append(resp.ConsecutivePatterns, consecutivePatternResponse{
			Number:  rep.Number,
			Count:   rep.Count,
			Meaning: rep.Meaning,
		})
	}
	return resp
}

func newAstrologyResponse(res service.AstrologyResult) astrologyResponse {
	chart := res.Chart
	resp := astrologyResponse{
		Planets: make([]planetResponse, 0, len(chart.Planets)),
		Signs: signsResponse{
			Sun:       chart.Sun.String(),
			Moon:      chart.Moon.String(),
			Ascendant: chart.Ascendant.String(),
		},
		Interpretations: astrologyInterpretationsResponse{
			Sun:                chart.Interpretations.Sun,
			Moon:               chart.Interpretations.Moon,
			Ascendant:          chart.Interpretations.Ascendant,
			FullInterpretation: chart.Interpretations.Full,
		},
		ReadingID: res.ReadingID,
	}
	for _, p := range chart.Planets {
		resp.Planets = append(resp.Planets, newPlanetResponse(p))
	}
	return resp
}

func newPlanetResponse(p astrology.PlanetEntry) planetResponse {
	return planetResponse{
		Name:     p.Planet.String(),
		Sign:     p.Sign.String(),
		Position: positionResponse{X: p.Position.X, Y: p.Position.Y},
	}
}

func newReadingResponse(r domain.Reading) readingResponse {
	resp := readingResponse{
		ReadingID:    r.ID,
		Kind:         string(r.Kind),
		Subject:      r.Subject,
		BirthDate:    r.BirthDate,
		BirthTime:    r.BirthTime,
		BirthCity:    r.BirthCity,
		BirthCountry: r.BirthCountry,
		Traits:       make([]traitResponse, 0, len(r.Traits)),
		CreatedAt:    formatTime(r.CreatedAt),
	}
	for _, t := range r.Traits {
		resp.Traits = append(resp.Traits, traitResponse{Type: string(t.Type), Value: t.Value})
	}
	return resp
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, CreatedAt: formatTime(u.CreatedAt)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
