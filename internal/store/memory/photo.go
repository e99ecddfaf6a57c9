package memory

import (
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/model"
)

func (s *Store) CreatePhoto(familyID int64, uploadedByID string, title, description *string, imageURL string, albumID *int64) (*model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	p := model.Photo{
		ID:           s.id(),
		FamilyID:     familyID,
		UploadedByID: uploadedByID,
		Title:        title,
		Description:  description,
		ImageURL:     imageURL,
		AlbumID:      albumID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	s.photos[p.ID] = p
	return &p, nil
}

func (s *Store) GetFamilyPhotos(familyID int64) ([]model.PhotoWithUploader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var photos []model.PhotoWithUploader
	for _, p := range s.photos {
		if p.FamilyID != familyID {
			continue
		}
		u, ok := s.users[p.UploadedByID]
		if !ok {
			continue
		}
		photos = append(photos, model.PhotoWithUploader{Photo: p, UploadedBy: u})
	}
	sortNewestFirst(photos,
		func(p model.PhotoWithUploader) time.Time { return p.CreatedAt },
		func(p model.PhotoWithUploader) int64 { return p.ID })
	return photos, nil
}

func (s *Store) GetPhoto(id int64) (*model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) CreateAlbum(familyID int64, createdByID, name string, description *string, coverPhotoID *int64) (*model.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	a := model.Album{
		ID:           s.id(),
		FamilyID:     familyID,
		CreatedByID:  createdByID,
		Name:         name,
		Description:  description,
		CoverPhotoID: coverPhotoID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	s.albums[a.ID] = a
	return &a, nil
}

func (s *Store) GetFamilyAlbums(familyID int64) ([]model.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var albums []model.Album
	for _, a := range s.albums {
		if a.FamilyID == familyID {
			albums = append(albums, a)
		}
	}
	sortNewestFirst(albums,
		func(a model.Album) time.Time { return a.CreatedAt },
		func(a model.Album) int64 { return a.ID })
	return albums, nil
}

func (s *Store) GetAlbum(id int64) (*model.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.albums[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}
