package memory

import (
	"sort"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

func (s *Store) CreatePost(familyID int64, authorID, content string, photoIDs []string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	p := model.Post{
		ID:        s.id(),
		FamilyID:  familyID,
		AuthorID:  authorID,
		Content:   content,
		PhotoIDs:  append([]string(nil), photoIDs...),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.posts[p.ID] = p
	return &p, nil
}

func (s *Store) GetFamilyPosts(familyID int64) ([]model.PostDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []model.PostDetail
	for _, p := range s.posts {
		if p.FamilyID != familyID {
			continue
		}
		author, ok := s.users[p.AuthorID]
		if !ok {
			continue
		}
		posts = append(posts, model.PostDetail{
			Post:      p,
			Author:    author,
			Reactions: s.postReactions(p.ID),
			Comments:  s.postComments(p.ID),
		})
	}
	sortNewestFirst(posts,
		func(p model.PostDetail) time.Time { return p.CreatedAt },
		func(p model.PostDetail) int64 { return p.ID })
	return posts, nil
}

// postReactions and postComments assume s.mu is held.
func (s *Store) postReactions(postID int64) []model.PostReaction {
	reactions := []model.PostReaction{}
	for _, r := range s.reactions {
		if r.PostID == postID {
			reactions = append(reactions, r)
		}
	}
	sortByID(reactions, func(r model.PostReaction) int64 { return r.ID })
	return reactions
}

func (s *Store) postComments(postID int64) []model.CommentWithAuthor {
	comments := []model.CommentWithAuthor{}
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		author, ok := s.users[c.AuthorID]
		if !ok {
			continue
		}
		comments = append(comments, model.CommentWithAuthor{Comment: c, Author: author})
	}
	// Oldest first within a post.
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

func (s *Store) GetPost(id int64) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) TogglePostReaction(postID int64, userID, reactionType string) (*model.PostReaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.reactions {
		if r.PostID == postID && r.UserID == userID {
			delete(s.reactions, id)
			return nil, nil
		}
	}

	r := model.PostReaction{
		ID:           s.id(),
		PostID:       postID,
		UserID:       userID,
		ReactionType: reactionType,
		CreatedAt:    now(),
	}
	s.reactions[r.ID] = r
	return &r, nil
}

func (s *Store) CreateComment(postID int64, authorID, content string) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	c := model.Comment{
		ID:        s.id(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.comments[c.ID] = c
	return &c, nil
}
