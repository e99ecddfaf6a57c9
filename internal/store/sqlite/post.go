package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

const postCols = `id, family_id, author_id, content, photo_ids, created_at, updated_at`
const reactionCols = `id, post_id, user_id, reaction_type, created_at`

// photo_ids is stored as a JSON array in a TEXT column; NULL means none.
func encodePhotoIDs(ids []string) (any, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode photo ids: %w", err)
	}
	return string(b), nil
}

func decodePhotoIDs(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw.String), &ids); err != nil {
		return nil, fmt.Errorf("decode photo ids: %w", err)
	}
	return ids, nil
}

func scanPost(sc scanner) (*model.Post, error) {
	var p model.Post
	var raw sql.NullString
	if err := sc.Scan(&p.ID, &p.FamilyID, &p.AuthorID, &p.Content, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	ids, err := decodePhotoIDs(raw)
	if err != nil {
		return nil, err
	}
	p.PhotoIDs = ids
	return &p, nil
}

func scanReaction(sc scanner) (*model.PostReaction, error) {
	var r model.PostReaction
	err := sc.Scan(&r.ID, &r.PostID, &r.UserID, &r.ReactionType, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreatePost(familyID int64, authorID, content string, photoIDs []string) (*model.Post, error) {
	encoded, err := encodePhotoIDs(photoIDs)
	if err != nil {
		return nil, err
	}
	ts := now()
	result, err := s.db.Exec(
		`INSERT INTO posts (family_id, author_id, content, photo_ids, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		familyID, authorID, content, encoded, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetPost(id)
}

func (s *Store) GetFamilyPosts(familyID int64) ([]model.PostDetail, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.family_id, p.author_id, p.content, p.photo_ids, p.created_at, p.updated_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.family_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family posts: %w", err)
	}
	defer rows.Close()

	var posts []model.PostDetail
	for rows.Next() {
		var d model.PostDetail
		var raw sql.NullString
		if err := rows.Scan(
			&d.ID, &d.FamilyID, &d.AuthorID, &d.Content, &raw, &d.CreatedAt, &d.UpdatedAt,
			&d.Author.ID, &d.Author.Email, &d.Author.FirstName, &d.Author.LastName, &d.Author.ProfileImageURL, &d.Author.CreatedAt, &d.Author.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		ids, err := decodePhotoIDs(raw)
		if err != nil {
			return nil, err
		}
		d.PhotoIDs = ids
		posts = append(posts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		reactions, err := s.listPostReactions(posts[i].ID)
		if err != nil {
			return nil, err
		}
		comments, err := s.listPostComments(posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Reactions = reactions
		posts[i].Comments = comments
	}
	return posts, nil
}

func (s *Store) listPostReactions(postID int64) ([]model.PostReaction, error) {
	rows, err := s.db.Query(
		`SELECT `+reactionCols+` FROM post_reactions WHERE post_id = ? ORDER BY id ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("list post reactions: %w", err)
	}
	defer rows.Close()

	reactions := []model.PostReaction{}
	for rows.Next() {
		r, err := scanReaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reaction: %w", err)
		}
		reactions = append(reactions, *r)
	}
	return reactions, rows.Err()
}

func (s *Store) listPostComments(postID int64) ([]model.CommentWithAuthor, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, c.updated_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ?
		 ORDER BY c.created_at ASC, c.id ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("list post comments: %w", err)
	}
	defer rows.Close()

	comments := []model.CommentWithAuthor{}
	for rows.Next() {
		var c model.CommentWithAuthor
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.ID, &c.Author.Email, &c.Author.FirstName, &c.Author.LastName, &c.Author.ProfileImageURL, &c.Author.CreatedAt, &c.Author.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) GetPost(id int64) (*model.Post, error) {
	row := s.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// TogglePostReaction runs the check-then-write inside a transaction; the
// unique (post_id, user_id) index backstops concurrent toggles.
func (s *Store) TogglePostReaction(postID int64, userID, reactionType string) (*model.PostReaction, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(
		`SELECT id FROM post_reactions WHERE post_id = ? AND user_id = ?`,
		postID, userID,
	).Scan(&existingID)
	switch {
	case err == nil:
		if _, err := tx.Exec(`DELETE FROM post_reactions WHERE id = ?`, existingID); err != nil {
			return nil, fmt.Errorf("delete reaction: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return nil, nil
	case err != sql.ErrNoRows:
		return nil, fmt.Errorf("get reaction: %w", err)
	}

	ts := now()
	result, err := tx.Exec(
		`INSERT INTO post_reactions (post_id, user_id, reaction_type, created_at) VALUES (?, ?, ?, ?)`,
		postID, userID, reactionType, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reaction: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &model.PostReaction{
		ID:           id,
		PostID:       postID,
		UserID:       userID,
		ReactionType: reactionType,
		CreatedAt:    ts,
	}, nil
}

func (s *Store) CreateComment(postID int64, authorID, content string) (*model.Comment, error) {
	ts := now()
	result, err := s.db.Exec(
		`INSERT INTO comments (post_id, author_id, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		postID, authorID, content, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	var c model.Comment
	row := s.db.QueryRow(`SELECT id, post_id, author_id, content, created_at, updated_at FROM comments WHERE id = ?`, id)
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}
