package games_test

import (
	"fmt"
	"strings"

	"github.com/gamedex/gamedex/pkg/games"
)

// Example demonstrates building a catalog from a line stream and running
// a few queries over it.
func Example() {
	dataset := `name,platform,release_date,summary,meta_score,user_review
SoulCalibur,Dreamcast,08-Sep-1999,A tale of souls and swords eternally retold,98,8.6
Shenmue,Dreamcast,04-Nov-1999,Ryo Hazuki hunts his father's killer across Yokosuka,88,8.8
Jet Set Radio,Dreamcast,30-Oct-2000,Spray graffiti and skate through the streets of Tokyo-to,94,8.1`

	catalog, err := games.New(strings.NewReader(dataset))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Println(catalog.Len(), "games loaded")
	fmt.Println("active years:", catalog.YearsActive("Dreamcast"))

	best, err := catalog.HighestRatedOn("Dreamcast")
	if err != nil {
		fmt.Println("lookup failed:", err)
		return
	}
	fmt.Println("highest rated:", best.Name)

	// Output:
	// 3 games loaded
	// active years: 1
	// highest rated: Shenmue
}
