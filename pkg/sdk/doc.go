// Package roomsearch provides a Go client for the roomsearch
// interior-design image retrieval API.
//
//	client := roomsearch.New("http://localhost:8080",
//	    roomsearch.WithAPIKey("secret"),
//	)
//	results, _ := client.Search(ctx, roomsearch.SearchRequest{
//	    Query: "modern bathroom but not marble",
//	})
//	for _, r := range results {
//	    fmt.Println(r.Rank, r.Title, r.AssetURL)
//	}
//
// Queries may carry a negative clause ("but not", "without", "excluding"
// and similar). Items close to the negative clause are pushed down the
// ranking rather than filtered out.
package roomsearch
