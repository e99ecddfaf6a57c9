package model

import "time"

type Photo struct {
	ID           int64     `json:"id"`
	FamilyID     int64     `json:"familyId"`
	UploadedByID string    `json:"uploadedById"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	AlbumID      *int64    `json:"albumId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PhotoWithUploader struct {
	Photo
	UploadedBy User `json:"uploadedBy"`
}

type Album struct {
	ID           int64     `json:"id"`
	FamilyID     int64     `json:"familyId"`
	CreatedByID  string    `json:"createdById"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	CoverPhotoID *int64    `json:"coverPhotoId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
