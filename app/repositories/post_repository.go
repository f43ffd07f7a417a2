package repositories

import (
	"fmt"
	"sort"

	"ourblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post. The title index key is claimed in the same
// transaction that writes the post record, so two concurrent creates with
// the same title cannot both succeed.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		tKey := titleKey(post.Title)
		_, err := txn.Get(tKey)
		if err == nil {
			return ErrDuplicateTitle
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		if err := txn.Set(tKey, itob(post.ID)); err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves a window of posts ordered by date, newest first.
// A limit of 0 means no limit.
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	posts, err := r.scanPosts(nil)
	if err != nil {
		return nil, err
	}
	return windowPosts(posts, limit, offset), nil
}

// ListByAuthor retrieves a window of posts by an exact author match,
// ordered by date, newest first. A limit of 0 means no limit.
func (r *BadgerPostRepository) ListByAuthor(author string, limit, offset int) ([]*models.Post, error) {
	posts, err := r.scanPosts(func(p *models.Post) bool {
		return p.Author == author
	})
	if err != nil {
		return nil, err
	}
	return windowPosts(posts, limit, offset), nil
}

// Update replaces an existing post record. When the title changed, the
// old index key is released and the new one claimed in the same
// transaction; a title held by a different post is a collision.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if post.Title != existing.Title {
			tKey := titleKey(post.Title)
			_, err := txn.Get(tKey)
			if err == nil {
				return ErrDuplicateTitle
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(titleKey(existing.Title)); err != nil {
				return err
			}
			if err := txn.Set(tKey, itob(post.ID)); err != nil {
				return err
			}
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID together with its title index key and every
// comment belonging to it, all in one transaction. No orphaned comments
// survive a post delete.
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		var commentKeys [][]byte
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := []byte(fmt.Sprintf("%s%d:", CommentKeyPrefix, id))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			commentKeys = append(commentKeys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, ck := range commentKeys {
			if err := txn.Delete(ck); err != nil {
				return err
			}
		}
		if err := txn.Delete(titleKey(post.Title)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// scanPosts loads every post, optionally filtered, sorted newest first.
// The ID breaks ties between posts written in the same instant.
func (r *BadgerPostRepository) scanPosts(match func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if match == nil || match(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

// windowPosts applies the limit/offset window. A limit of 0 disables
// windowing and returns everything.
func windowPosts(posts []*models.Post, limit, offset int) []*models.Post {
	if limit == 0 {
		return posts
	}
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}
