package unitofwork

import (
	"context"
	"fmt"

	"bookmarkhub-be/internal/repository/contract"
	"bookmarkhub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) BookmarkRepository() contract.BookmarkRepository {
	return implementation.NewBookmarkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserBookmarkRepository() contract.UserBookmarkRepository {
	return implementation.NewUserBookmarkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SpaceRepository() contract.SpaceRepository {
	return implementation.NewSpaceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SpaceBookmarkRepository() contract.SpaceBookmarkRepository {
	return implementation.NewSpaceBookmarkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PartitionRepository() contract.PartitionRepository {
	return implementation.NewPartitionRepository(u.getDB())
}
