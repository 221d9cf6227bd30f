package menu

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
)

type fakeMenuRepository struct {
	items      map[uint]*entities.MenuItem
	nextID     uint
	createErr  error
	creates    int
	updates    int
	deletes    int
	listCalled int
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{items: map[uint]*entities.MenuItem{}, nextID: 1}
}

func (f *fakeMenuRepository) GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error) {
	f.listCalled++
	var items []*entities.MenuItem
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeMenuRepository) GetMenuItemByID(ctx context.Context, id uint) (*entities.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeMenuRepository) CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	menuItem.ID = f.nextID
	f.nextID++
	f.items[menuItem.ID] = menuItem
	return nil
}

func (f *fakeMenuRepository) UpdateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	f.updates++
	f.items[menuItem.ID] = menuItem
	return nil
}

func (f *fakeMenuRepository) DeleteMenuItem(ctx context.Context, id uint) error {
	f.deletes++
	delete(f.items, id)
	return nil
}

type fakeAwsS3 struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (f *fakeAwsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	objectKey := dir + "/" + fileName
	f.uploads = append(f.uploads, objectKey)
	return objectKey, nil
}

func (f *fakeAwsS3) DeleteFile(objectKey string) error {
	f.deletes = append(f.deletes, objectKey)
	return nil
}

func (f *fakeAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func (f *fakeAwsS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.test.amazonaws.com/")
}

func imageFile(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     64,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func createRequest() domain.CreateMenuItemRequest {
	return domain.CreateMenuItemRequest{
		Name:     "Chocolate Fudge Cake",
		Category: "Cakes",
		Price:    12.5,
		File:     imageFile("fudge.png"),
	}
}

func TestGetMenuItemByID_ZeroID(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, &fakeAwsS3{})

	_, err := svc.GetMenuItemByID(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrInvalidMenuItemID)
}

func TestGetMenuItemByID_NotFound(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, &fakeAwsS3{})

	_, err := svc.GetMenuItemByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestCreateMenuItem_MissingImage(t *testing.T) {
	repo := newFakeMenuRepository()
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	req := createRequest()
	req.File = nil
	_, err := svc.CreateMenuItem(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrImageRequired)

	req.File = &multipart.FileHeader{Filename: "empty.png", Size: 0}
	_, err = svc.CreateMenuItem(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrImageRequired)

	assert.Empty(t, s3.uploads, "no upload may happen before validation")
	assert.Zero(t, repo.creates, "no record may be written before validation")
}

func TestCreateMenuItem_UploadsAndPersists(t *testing.T) {
	repo := newFakeMenuRepository()
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	res, err := svc.CreateMenuItem(context.Background(), createRequest())

	assert.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Len(t, s3.uploads, 1)
	assert.True(t, strings.HasSuffix(s3.uploads[0], ".png"), "object key keeps the upload's extension")
	assert.Equal(t, s3.GetPublicLinkKey(s3.uploads[0]), res.Image)
	assert.Equal(t, 1, repo.creates)
}

func TestCreateMenuItem_InsertFailureLeavesUpload(t *testing.T) {
	repo := newFakeMenuRepository()
	repo.createErr = assert.AnError
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	_, err := svc.CreateMenuItem(context.Background(), createRequest())

	assert.Error(t, err)
	assert.Len(t, s3.uploads, 1)
	assert.Empty(t, s3.deletes, "no compensating delete is performed")
}

func TestUpdateMenuItem_IDMismatch(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, &fakeAwsS3{})

	err := svc.UpdateMenuItem(context.Background(), 1, domain.UpdateMenuItemRequest{ID: 2, Name: "x", Category: "y"})

	assert.ErrorIs(t, err, domain.ErrMenuItemIDMismatch)
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, &fakeAwsS3{})

	err := svc.UpdateMenuItem(context.Background(), 7, domain.UpdateMenuItemRequest{ID: 7, Name: "x", Category: "y"})

	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestUpdateMenuItem_WithoutImageKeepsBlob(t *testing.T) {
	repo := newFakeMenuRepository()
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	created, err := svc.CreateMenuItem(context.Background(), createRequest())
	assert.NoError(t, err)

	err = svc.UpdateMenuItem(context.Background(), created.ID, domain.UpdateMenuItemRequest{
		ID:       created.ID,
		Name:     "Renamed Cake",
		Category: "Cakes",
		Price:    14,
	})

	assert.NoError(t, err)
	assert.Len(t, s3.uploads, 1, "no new upload without a new image")
	assert.Empty(t, s3.deletes)

	updated := repo.items[created.ID]
	assert.Equal(t, "Renamed Cake", updated.Name)
	assert.Equal(t, 14.0, updated.Price)
	assert.Equal(t, created.Image, updated.Image)
}

func TestUpdateMenuItem_WithImageReplacesBlob(t *testing.T) {
	repo := newFakeMenuRepository()
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	created, err := svc.CreateMenuItem(context.Background(), createRequest())
	assert.NoError(t, err)
	oldKey := s3.uploads[0]

	err = svc.UpdateMenuItem(context.Background(), created.ID, domain.UpdateMenuItemRequest{
		ID:       created.ID,
		Name:     created.Name,
		Category: created.Category,
		Price:    created.Price,
		File:     imageFile("new.png"),
	})

	assert.NoError(t, err)
	assert.Len(t, s3.uploads, 2, "exactly one new upload")
	assert.Equal(t, []string{oldKey}, s3.deletes, "exactly one prior image deletion")
	assert.Equal(t, s3.GetPublicLinkKey(s3.uploads[1]), repo.items[created.ID].Image)
}

func TestDeleteMenuItem_RemovesBlobAndRecord(t *testing.T) {
	repo := newFakeMenuRepository()
	s3 := &fakeAwsS3{}
	svc := NewMenuService(repo, s3)

	created, err := svc.CreateMenuItem(context.Background(), createRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteMenuItem(context.Background(), created.ID))
	assert.Equal(t, []string{s3.uploads[0]}, s3.deletes)
	assert.Empty(t, repo.items)

	// Deleting again no longer resolves.
	assert.ErrorIs(t, svc.DeleteMenuItem(context.Background(), created.ID), domain.ErrMenuItemNotFound)
}

func TestDeleteMenuItem_ZeroID(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, &fakeAwsS3{})

	assert.ErrorIs(t, svc.DeleteMenuItem(context.Background(), 0), domain.ErrInvalidMenuItemID)
}
