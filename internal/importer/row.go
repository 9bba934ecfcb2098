package importer

import (
	"strconv"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/keyword"
	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

// CSV column names, case-sensitive.
const (
	colName        = "Name"
	colEffect      = "Effect"
	colClass       = "Class"
	colType        = "Type"
	colPieceType   = "PieceType"
	colCost        = "Cost"
	colATK         = "ATK"
	colDEF         = "DEF"
	colMaterial    = "Material"
	colCustomLimit = "CustomLimit"
	colLimit       = "Limit"
)

// inferClass guesses a card's class from suit words in its name.
func inferClass(name string) model.Class {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "heart"):
		return model.ClassHearts
	case strings.Contains(lower, "diamond"):
		return model.ClassDiamonds
	case strings.Contains(lower, "club"):
		return model.ClassClubs
	case strings.Contains(lower, "spade"):
		return model.ClassSpades
	}
	return model.ClassNeutral
}

// inferPieceType guesses queen/king from the name, defaulting to basic.
func inferPieceType(name string) model.PieceType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "queen"):
		return model.PieceQueen
	case strings.Contains(lower, "king"):
		return model.PieceKing
	}
	return model.PieceBasic
}

// parseIntPtr turns a numeric CSV cell into *int. Blank or unparseable cells
// become nil, never zero.
func parseIntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseBoolish(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "true" || s == "1"
}

// buildCard maps one CSV row onto a card record, filling class and piece
// type from name heuristics when the CSV leaves them blank, and auto-tagging
// keywords mentioned in the effect text.
func buildCard(row map[string]string, setID model.SetID, dict []model.Keyword) model.Card {
	c := model.Card{
		Name:   strings.TrimSpace(row[colName]),
		Effect: strings.TrimSpace(row[colEffect]),
		Set:    model.NewSetRef(setID),
	}

	if cls := strings.TrimSpace(row[colClass]); model.ValidClass(cls) {
		c.Class = model.Class(cls)
	} else {
		c.Class = inferClass(c.Name)
	}

	switch strings.TrimSpace(row[colType]) {
	case string(model.TypeTactic):
		c.Type = model.TypeTactic
	default:
		c.Type = model.TypePiece
	}

	if c.Type == model.TypePiece {
		switch strings.TrimSpace(row[colPieceType]) {
		case string(model.PieceQueen):
			c.PieceType = model.PieceQueen
		case string(model.PieceKing):
			c.PieceType = model.PieceKing
		case string(model.PieceBasic):
			c.PieceType = model.PieceBasic
		default:
			c.PieceType = inferPieceType(c.Name)
		}
	}

	c.Cost = parseIntPtr(row[colCost])
	c.ATK = parseIntPtr(row[colATK])
	c.DEF = parseIntPtr(row[colDEF])
	c.Material = parseIntPtr(row[colMaterial])

	if parseBoolish(row[colCustomLimit]) {
		c.CustomLimit = true
		switch strings.TrimSpace(row[colLimit]) {
		case "1", "2", "3":
			c.Limit = strings.TrimSpace(row[colLimit])
		}
	}

	c.Keywords = keyword.Matching(dict, c.Effect)
	return c
}
