package domain

import "time"

// SocialPostStatus is the publishing state of a post
type SocialPostStatus string

const (
	SocialPostDraft     SocialPostStatus = "draft"
	SocialPostScheduled SocialPostStatus = "scheduled"
	SocialPostPosted    SocialPostStatus = "posted"
)

// SocialPost is a generated social-media post plus its image options.
// ImageOptions holds the distinct references produced by the tiered
// image acquisition; SelectedImage is the one the user picked.
type SocialPost struct {
	ID            string           `json:"id"`
	OwnerID       string           `json:"owner_id"`
	WorkspaceID   string           `json:"workspace_id,omitempty"`
	Platform      string           `json:"platform"`
	Topic         string           `json:"topic"`
	Text          string           `json:"text"`
	Hashtags      []string         `json:"hashtags,omitempty"`
	Description   string           `json:"description,omitempty"`
	ImagePrompt   string           `json:"image_prompt,omitempty"`
	ImageOptions  []string         `json:"image_options,omitempty"`
	SelectedImage string           `json:"selected_image,omitempty"`
	Status        SocialPostStatus `json:"status"`
	Source        GenerationSource `json:"source"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// SocialPostRepository defines the interface for social post persistence operations
type SocialPostRepository interface {
	GetByID(id string) (*SocialPost, error)
	ListByOwner(ownerID string) ([]*SocialPost, error)
	Create(post *SocialPost) (*SocialPost, error)
	Update(post *SocialPost) (*SocialPost, error)
	Delete(id string) error
}
