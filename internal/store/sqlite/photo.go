package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

const photoCols = `id, family_id, uploaded_by_id, title, description, image_url, album_id, created_at, updated_at`
const albumCols = `id, family_id, created_by_id, name, description, cover_photo_id, created_at, updated_at`

func scanPhoto(sc scanner) (*model.Photo, error) {
	var p model.Photo
	err := sc.Scan(&p.ID, &p.FamilyID, &p.UploadedByID, &p.Title, &p.Description, &p.ImageURL, &p.AlbumID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanAlbum(sc scanner) (*model.Album, error) {
	var a model.Album
	err := sc.Scan(&a.ID, &a.FamilyID, &a.CreatedByID, &a.Name, &a.Description, &a.CoverPhotoID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreatePhoto(familyID int64, uploadedByID string, title, description *string, imageURL string, albumID *int64) (*model.Photo, error) {
	ts := now()
	result, err := s.db.Exec(
		`INSERT INTO photos (family_id, uploaded_by_id, title, description, image_url, album_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		familyID, uploadedByID, title, description, imageURL, albumID, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetPhoto(id)
}

func (s *Store) GetFamilyPhotos(familyID int64) ([]model.PhotoWithUploader, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.family_id, p.uploaded_by_id, p.title, p.description, p.image_url, p.album_id, p.created_at, p.updated_at,
		        u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at
		 FROM photos p
		 JOIN users u ON u.id = p.uploaded_by_id
		 WHERE p.family_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family photos: %w", err)
	}
	defer rows.Close()

	var photos []model.PhotoWithUploader
	for rows.Next() {
		var p model.PhotoWithUploader
		if err := rows.Scan(
			&p.ID, &p.FamilyID, &p.UploadedByID, &p.Title, &p.Description, &p.ImageURL, &p.AlbumID, &p.CreatedAt, &p.UpdatedAt,
			&p.UploadedBy.ID, &p.UploadedBy.Email, &p.UploadedBy.FirstName, &p.UploadedBy.LastName, &p.UploadedBy.ProfileImageURL, &p.UploadedBy.CreatedAt, &p.UploadedBy.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *Store) GetPhoto(id int64) (*model.Photo, error) {
	row := s.db.QueryRow(`SELECT `+photoCols+` FROM photos WHERE id = ?`, id)
	p, err := scanPhoto(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

func (s *Store) CreateAlbum(familyID int64, createdByID, name string, description *string, coverPhotoID *int64) (*model.Album, error) {
	ts := now()
	result, err := s.db.Exec(
		`INSERT INTO albums (family_id, created_by_id, name, description, cover_photo_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		familyID, createdByID, name, description, coverPhotoID, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert album: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetAlbum(id)
}

func (s *Store) GetFamilyAlbums(familyID int64) ([]model.Album, error) {
	rows, err := s.db.Query(
		`SELECT `+albumCols+` FROM albums WHERE family_id = ? ORDER BY created_at DESC, id DESC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family albums: %w", err)
	}
	defer rows.Close()

	var albums []model.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, *a)
	}
	return albums, rows.Err()
}

func (s *Store) GetAlbum(id int64) (*model.Album, error) {
	row := s.db.QueryRow(`SELECT `+albumCols+` FROM albums WHERE id = ?`, id)
	a, err := scanAlbum(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return a, nil
}
