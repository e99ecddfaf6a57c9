package model

import "time"

const ReactionLike = "like"

type Post struct {
	ID        int64     `json:"id"`
	FamilyID  int64     `json:"familyId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	PhotoIDs  []string  `json:"photoIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostReaction is unique per (postId, userId); repeated reacts toggle the
// row on and off rather than accumulating.
type PostReaction struct {
	ID           int64     `json:"id"`
	PostID       int64     `json:"postId"`
	UserID       string    `json:"userId"`
	ReactionType string    `json:"reactionType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentWithAuthor struct {
	Comment
	Author User `json:"author"`
}

// PostDetail is the feed view model: the post, its author, every reaction,
// and every comment joined with its author.
type PostDetail struct {
	Post
	Author    User                `json:"author"`
	Reactions []PostReaction      `json:"reactions"`
	Comments  []CommentWithAuthor `json:"comments"`
}
