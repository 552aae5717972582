package store

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"recipebox/models"
)

// FirestoreStore reads recipes from a Firestore collection. Each document
// carries its slug in the "slug" field.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreClient opens a client for projectID, using credentialsFile when
// it is set and application default credentials otherwise.
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	if collection == "" {
		collection = "recipes"
	}
	return &FirestoreStore{client: client, collection: collection}
}

func (s *FirestoreStore) Get(ctx context.Context, slug string) (*models.Recipe, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", models.ErrNotFound)
	}

	iter := s.client.Collection(s.collection).Where("slug", "==", slug).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe %q: %w", slug, err)
	}

	var recipe models.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", models.ErrInvalidRecipe, slug, err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *FirestoreStore) List(ctx context.Context) ([]models.Summary, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var summaries []models.Summary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list recipes: %w", err)
		}

		var recipe models.Recipe
		if err := doc.DataTo(&recipe); err != nil || recipe.Slug == "" {
			continue
		}
		summaries = append(summaries, recipe.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Slug < summaries[j].Slug })
	return summaries, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
