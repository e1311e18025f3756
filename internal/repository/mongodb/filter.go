package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

// bookFilter translates c into a bson filter document.
func bookFilter(c criteria.Criteria) (bson.D, error) {
	f := bson.D{}
	if c.Scoped {
		owner, err := primitive.ObjectIDFromHex(c.Owner)
		if err != nil {
			return nil, repository.ErrInvalidID
		}
		f = append(f, bson.E{Key: "owner", Value: owner})
	}
	if c.Text != "" && len(c.TextFields) > 0 {
		// QuoteMeta keeps user input a literal substring, not a pattern.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(c.Text), Options: "i"}
		if len(c.TextFields) == 1 {
			f = append(f, bson.E{Key: string(c.TextFields[0]), Value: pattern})
		} else {
			or := bson.A{}
			for _, fld := range c.TextFields {
				or = append(or, bson.D{{Key: string(fld), Value: pattern}})
			}
			f = append(f, bson.E{Key: "$or", Value: or})
		}
	}
	if c.Tag != "" {
		f = append(f, bson.E{Key: "tags", Value: c.Tag})
	}
	if c.HasYearBound() {
		rng := bson.D{}
		if c.YearMin != nil {
			rng = append(rng, bson.E{Key: "$gte", Value: *c.YearMin})
		}
		if c.YearMax != nil {
			rng = append(rng, bson.E{Key: "$lte", Value: *c.YearMax})
		}
		f = append(f, bson.E{Key: "year", Value: rng})
	}
	return f, nil
}

func findOptions(c criteria.Criteria) *options.FindOptions {
	opts := options.Find()
	if c.Order == criteria.OrderNewestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	if c.Limit > 0 {
		opts.SetLimit(int64(c.Limit))
	}
	return opts
}

func targetFilter(t criteria.Target) (bson.D, error) {
	id, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	f := bson.D{{Key: "_id", Value: id}}
	if t.Scoped {
		owner, err := primitive.ObjectIDFromHex(t.Owner)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		f = append(f, bson.E{Key: "owner", Value: owner})
	}
	return f, nil
}

// patchSet builds the $set document for p; updatedAt is added by the caller.
func patchSet(p models.BookPatch) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *p.Author})
	}
	if p.Year != nil {
		set = append(set, bson.E{Key: "year", Value: *p.Year})
	}
	if p.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: *p.Tags})
	}
	return set
}
