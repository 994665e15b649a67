package domain

import (
	"sort"
	"time"
)

// CategorySystemDesign is pinned to the top of every post listing.
const CategorySystemDesign = "System Design"

type BlogPost struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string    `json:"slug" gorm:"uniqueIndex"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	Date          string    `json:"date"` // ISO date (YYYY-MM-DD)
	Category      string    `json:"category"`
	ReadTime      string    `json:"readTime"`
	FeaturedImage string    `json:"featuredImage"`
	Featured      bool      `json:"featured" gorm:"default:false"`
	Series        string    `json:"series"`
	SeriesOrder   *int      `json:"order" gorm:"column:series_order"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SortPostsForDisplay orders posts for listing: System Design posts first,
// then ascending series order (posts without one sort last), then newest
// date, then descending id as the final tie-break so the order is
// deterministic even when dates collide.
func SortPostsForDisplay(posts []*BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]

		aPinned := a.Category == CategorySystemDesign
		bPinned := b.Category == CategorySystemDesign
		if aPinned != bPinned {
			return aPinned
		}

		ao, bo := seriesOrderRank(a), seriesOrderRank(b)
		if ao != bo {
			return ao < bo
		}

		if a.Date != b.Date {
			return a.Date > b.Date
		}

		return a.ID > b.ID
	})
}

func seriesOrderRank(p *BlogPost) int {
	if p.SeriesOrder == nil {
		return int(^uint(0) >> 1) // sort absent order last
	}
	return *p.SeriesOrder
}
