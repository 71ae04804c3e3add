package board

import "github.com/thenoetrevino/lanes/internal/models"

// CardsInLane returns the cards belonging to lane, in their store order
func CardsInLane(cards []models.Card, lane models.LaneID) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if card.Lane == lane {
			out = append(out, card)
		}
	}
	return out
}

// Counts returns the number of cards in each lane. Every lane has an entry.
func Counts(cards []models.Card) map[models.LaneID]int {
	counts := make(map[models.LaneID]int, len(models.Lanes()))
	for _, lane := range models.Lanes() {
		counts[lane] = 0
	}
	for _, card := range cards {
		counts[card.Lane]++
	}
	return counts
}

// Find returns the index of the card with id, or -1
func Find(cards []models.Card, id string) int {
	for i, card := range cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}
