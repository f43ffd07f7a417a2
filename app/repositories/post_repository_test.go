package repositories

import (
	"testing"
	"time"

	"ourblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (*BadgerPostRepository, *BadgerCommentRepository) {
	db, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBadgerPostRepository(db), NewBadgerCommentRepository(db)
}

func testPost(title string, date time.Time) *models.Post {
	return &models.Post{
		Author:   "Jane",
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "Some body text",
		Date:     date,
	}
}

func TestPostRepositoryCreateAndGet(t *testing.T) {
	posts, _ := newTestRepos(t)

	post := testPost("First Post", time.Now())
	require.NoError(t, posts.Create(post))
	assert.Greater(t, post.ID, 0)

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Author, got.Author)
	assert.Equal(t, post.Subtitle, got.Subtitle)
	assert.Equal(t, post.Body, got.Body)
	assert.False(t, got.Date.IsZero())

	_, err = posts.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepositoryDuplicateTitle(t *testing.T) {
	posts, _ := newTestRepos(t)

	require.NoError(t, posts.Create(testPost("Hello World", time.Now())))

	dup := testPost("Hello World", time.Now())
	dup.Author = "Someone Else"
	dup.Body = "Entirely different body"
	err := posts.Create(dup)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	// The failed create must not leave a half-written record behind.
	all, err := posts.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostRepositoryListOrderingAndWindow(t *testing.T) {
	posts, _ := newTestRepos(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		p := testPost("Post "+string(rune('A'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, posts.Create(p))
	}

	t.Run("no limit returns all newest first", func(t *testing.T) {
		all, err := posts.List(0, 0)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 0; i < len(all)-1; i++ {
			assert.False(t, all[i].Date.Before(all[i+1].Date))
		}
		assert.Equal(t, "Post E", all[0].Title)
		assert.Equal(t, "Post A", all[4].Title)
	})

	t.Run("window", func(t *testing.T) {
		page2, err := posts.List(2, 2)
		require.NoError(t, err)
		require.Len(t, page2, 2)
		assert.Equal(t, "Post C", page2[0].Title)
		assert.Equal(t, "Post B", page2[1].Title)
	})

	t.Run("offset past the end", func(t *testing.T) {
		empty, err := posts.List(2, 10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("short last window", func(t *testing.T) {
		last, err := posts.List(2, 4)
		require.NoError(t, err)
		require.Len(t, last, 1)
		assert.Equal(t, "Post A", last[0].Title)
	})
}

func TestPostRepositoryListByAuthor(t *testing.T) {
	posts, _ := newTestRepos(t)

	now := time.Now()
	jane := testPost("Jane One", now)
	require.NoError(t, posts.Create(jane))
	bob := testPost("Bob One", now.Add(time.Minute))
	bob.Author = "Bob"
	require.NoError(t, posts.Create(bob))

	got, err := posts.ListByAuthor("Jane", 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane One", got[0].Title)

	// Exact match only.
	none, err := posts.ListByAuthor("jane", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepositoryUpdate(t *testing.T) {
	posts, _ := newTestRepos(t)

	first := testPost("Original Title", time.Now())
	require.NoError(t, posts.Create(first))
	second := testPost("Taken Title", time.Now())
	require.NoError(t, posts.Create(second))

	t.Run("not found", func(t *testing.T) {
		missing := testPost("Whatever", time.Now())
		missing.ID = 999
		assert.ErrorIs(t, posts.Update(missing), ErrNotFound)
	})

	t.Run("title collision with a different post", func(t *testing.T) {
		updated := testPost("Taken Title", time.Now())
		updated.ID = first.ID
		assert.ErrorIs(t, posts.Update(updated), ErrDuplicateTitle)
	})

	t.Run("same title is not a collision", func(t *testing.T) {
		updated := testPost("Original Title", time.Now())
		updated.ID = first.ID
		updated.Body = "Rewritten body"
		require.NoError(t, posts.Update(updated))

		got, err := posts.GetByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rewritten body", got.Body)
	})

	t.Run("title change releases the old title", func(t *testing.T) {
		updated := testPost("Renamed Title", time.Now())
		updated.ID = first.ID
		require.NoError(t, posts.Update(updated))

		// The old title is free for a new post now.
		require.NoError(t, posts.Create(testPost("Original Title", time.Now())))

		// The new title is claimed.
		err := posts.Create(testPost("Renamed Title", time.Now()))
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})
}

func TestPostRepositoryDeleteCascades(t *testing.T) {
	posts, comments := newTestRepos(t)

	post := testPost("Doomed Post", time.Now())
	require.NoError(t, posts.Create(post))
	keep := testPost("Surviving Post", time.Now())
	require.NoError(t, posts.Create(keep))

	for i := 0; i < 3; i++ {
		c := &models.Comment{PostID: post.ID, Author: "Bob", Body: "Nice!", Date: time.Now()}
		require.NoError(t, comments.Create(c))
	}
	survivor := &models.Comment{PostID: keep.ID, Author: "Bob", Body: "Still here", Date: time.Now()}
	require.NoError(t, comments.Create(survivor))

	require.NoError(t, posts.Delete(post.ID))

	_, err := posts.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	gone, err := comments.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := comments.ListByPost(keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	// The deleted post's title is free again.
	assert.NoError(t, posts.Create(testPost("Doomed Post", time.Now())))

	assert.ErrorIs(t, posts.Delete(post.ID+100), ErrNotFound)
}
