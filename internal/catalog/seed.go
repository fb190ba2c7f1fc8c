// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package catalog

// seedRatings is the built-in sparse rating table.
var seedRatings = []Rating{
	{UserID: 1, BookID: 101, Rating: 5},
	{UserID: 1, BookID: 102, Rating: 4},
	{UserID: 1, BookID: 106, Rating: 5},
	{UserID: 2, BookID: 101, Rating: 4},
	{UserID: 2, BookID: 103, Rating: 5},
	{UserID: 2, BookID: 107, Rating: 4},
	{UserID: 3, BookID: 102, Rating: 5},
	{UserID: 3, BookID: 104, Rating: 3},
	{UserID: 3, BookID: 108, Rating: 5},
	{UserID: 4, BookID: 101, Rating: 5},
	{UserID: 4, BookID: 105, Rating: 4},
	{UserID: 4, BookID: 109, Rating: 5},
	{UserID: 5, BookID: 103, Rating: 4},
	{UserID: 5, BookID: 104, Rating: 5},
	{UserID: 5, BookID: 110, Rating: 3},
	{UserID: 6, BookID: 106, Rating: 5},
	{UserID: 6, BookID: 107, Rating: 4},
	{UserID: 6, BookID: 111, Rating: 5},
	{UserID: 7, BookID: 108, Rating: 4},
	{UserID: 7, BookID: 109, Rating: 5},
	{UserID: 7, BookID: 112, Rating: 4},
	{UserID: 8, BookID: 110, Rating: 4},
	{UserID: 8, BookID: 111, Rating: 5},
	{UserID: 8, BookID: 102, Rating: 4},
}

// seedBooks is the built-in catalog. 113 and 114 have no ratings.
var seedBooks = []Book{
	{ID: 101, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic Fiction", Genres: "Classic, Drama", PageCount: 180},
	{ID: 102, Title: "1984", Author: "George Orwell", Genre: "Dystopian", Genres: "Sci-Fi, Dystopian", PageCount: 328},
	{ID: 103, Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Classic Fiction", Genres: "Classic, Legal Drama", PageCount: 281},
	{ID: 104, Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", Genres: "Romance, Classic", PageCount: 400},
	{ID: 105, Title: "The Catcher in the Rye", Author: "J.D. Salinger", Genre: "Coming-of-age", Genres: "Coming-of-Age, Drama", PageCount: 234},
	{ID: 106, Title: "A Game of Thrones", Author: "George R.R. Martin", Genre: "Fantasy", Genres: "Fantasy, Epic", PageCount: 694, SeriesLabel: "A Song of Ice and Fire (1)"},
	{ID: 107, Title: "A Clash of Kings", Author: "George R.R. Martin", Genre: "Fantasy", Genres: "Fantasy, Epic", PageCount: 768, SeriesLabel: "A Song of Ice and Fire (2)"},
	{ID: 108, Title: "Small Gods", Author: "Terry Pratchett", Genre: "Fantasy", Genres: "Fantasy, Comedy", PageCount: 400, SeriesLabel: "Discworld (13)"},
	{ID: 109, Title: "The Long Way to a Small, Angry Planet", Author: "Becky Chambers", Genre: "Science Fiction", Genres: "Sci-Fi, Adventure", PageCount: 518, SeriesLabel: "Wayfarers (1)"},
	{ID: 110, Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams", Genre: "Science Fiction", Genres: "Sci-Fi, Comedy", PageCount: 224, SeriesLabel: "Hitchhiker's Guide (1)"},
	{ID: 111, Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Genres: "Sci-Fi, Epic", PageCount: 688},
	{ID: 112, Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Genre: "Fantasy", Genres: "Fantasy, Epic", PageCount: 423, SeriesLabel: "The Lord of the Rings (1)"},
	{ID: 113, Title: "The Two Towers", Author: "J.R.R. Tolkien", Genre: "Fantasy", Genres: "Fantasy, Epic", PageCount: 352, SeriesLabel: "The Lord of the Rings (2)"},
	{ID: 114, Title: "The Return of the King", Author: "J.R.R. Tolkien", Genre: "Fantasy", Genres: "Fantasy, Epic", PageCount: 416, SeriesLabel: "The Lord of the Rings (3)"},
}
