package domain

import "time"

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// AwarenessPost is an educational post shown on the public awareness
// feed. Likes are tracked per account id so a second like from the same
// account toggles the first off.
type AwarenessPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"mediaUrl,omitempty"`
	MediaType  string    `json:"mediaType,omitempty"`
	AuthorID   string    `json:"author"`
	AuthorName string    `json:"authorName"`
	Likes      int       `json:"likes"`
	LikedBy    []string  `json:"likedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToggleLike adds accountID to LikedBy, or removes it when already
// present, keeping Likes equal to len(LikedBy). Returns true when the
// post ends up liked by the account.
func (p *AwarenessPost) ToggleLike(accountID string) bool {
	for i, id := range p.LikedBy {
		if id == accountID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.Likes = len(p.LikedBy)
			return false
		}
	}
	p.LikedBy = append(p.LikedBy, accountID)
	p.Likes = len(p.LikedBy)
	return true
}
