// Package catalog holds the built-in list of books shown when no other source is configured.
package catalog

import "audiobookify/internal/types"

// Never written after initialization, hand out copies only.
var books = []types.Book{
	{
		Id:          1,
		Title:       "THE MARTIAN",
		Author:      "Andy Weir",
		Color:       "#e74c3c",
		Duration:    10.5,
		Rating:      4.8,
		Description: "Six days ago, astronaut Mark Watney became one of the first people to walk on Mars. Now, he's sure he'll be the first person to die there.",
	},
	{
		Id:          2,
		Title:       "DUNE",
		Author:      "Frank Herbert",
		Color:       "#d35400",
		Duration:    21.0,
		Rating:      4.9,
		Description: "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world where the only thing of value is the 'spice' melange.",
	},
	{
		Id:       3,
		Title:    "PROJECT HAIL MARY",
		Author:   "Andy Weir",
		Color:    "#f1c40f",
		Duration: 16.2,
		Rating:   4.9,
		// Mis-encoded em dash is kept as it came
		Description: "Ryland Grace is the sole survivor on a desperate, last-chance missionâ€”and if he fails, humanity and the earth itself will perish.",
	},
	{
		Id:          4,
		Title:       "ATOMIC HABITS",
		Author:      "James Clear",
		Color:       "#ecf0f1",
		TextColor:   "#2c3e50",
		Duration:    5.5,
		Rating:      4.7,
		Description: "No matter your goals, Atomic Habits offers a proven framework for improving--every day.",
	},
	{
		Id:          5,
		Title:       "STEVE JOBS",
		Author:      "Walter Isaacson",
		Color:       "#ffffff",
		TextColor:   "#000000",
		Duration:    25.0,
		Rating:      4.6,
		Description: "Based on more than forty interviews with Jobs conducted over two years.",
	},
	{
		Id:          6,
		Title:       "DARK MATTER",
		Author:      "Blake Crouch",
		Color:       "#2c3e50",
		Duration:    9.0,
		Rating:      4.5,
		Description: "Are you happy in your life? Those are the last words Jason Dessen hears before the masked abductor knocks him unconscious.",
	},
	{
		Id:          7,
		Title:       "1984",
		Author:      "George Orwell",
		Color:       "#8e44ad",
		Duration:    11.0,
		Rating:      4.6,
		Description: "Among the seminal texts of the 20th century, Nineteen Eighty-Four is a rare work that grows more haunting as its futuristic purgatory becomes more real.",
	},
	{
		Id:          8,
		Title:       "SAPIENS",
		Author:      "Yuval Noah Harari",
		Color:       "#27ae60",
		Duration:    15.0,
		Rating:      4.7,
		Description: "From a renowned historian comes a groundbreaking narrative of humanity's creation and evolution.",
	},
}

// All returns every book of the catalog in display order.
// The slice is a fresh copy on each call.
func All() []types.Book {
	ret := make([]types.Book, len(books))
	copy(ret, books)
	return ret
}
