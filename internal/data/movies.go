package data

// Movie is a single catalog record. Ids are assigned by the store at load
// time, starting at 1 in seed order, and never change afterwards.
//
//	{
//		"id": 3,
//		"title": "The Dark Knight",
//		"genre": "Action",
//		"isPopular": true
//	}
type Movie struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	IsPopular bool   `json:"isPopular"`
}
