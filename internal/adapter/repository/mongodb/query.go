package mongodb

import (
	"regexp"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildSearchFilter compiles a PropertyFilter into a conjunction of
// store-native predicates. Only present fields contribute a clause; an empty
// filter compiles to the empty document rather than a synthetic
// match-everything clause.
func buildSearchFilter(f domain.PropertyFilter) bson.M {
	var clauses []bson.M

	if f.Name != "" {
		clauses = append(clauses, bson.M{"name": substringMatch(f.Name)})
	}
	if f.Address != "" {
		clauses = append(clauses, bson.M{"address": substringMatch(f.Address)})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		clauses = append(clauses, bson.M{"price": price})
	}
	if f.Enabled != nil {
		clauses = append(clauses, bson.M{"enabled": *f.Enabled})
	}
	if f.IDOwner != "" {
		clauses = append(clauses, bson.M{"idOwner": f.IDOwner})
	}
	if f.CodeInternal != "" {
		clauses = append(clauses, bson.M{"codeInternal": f.CodeInternal})
	}
	if f.Year != nil {
		clauses = append(clauses, bson.M{"year": *f.Year})
	}

	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}

// substringMatch builds an unanchored case-insensitive regex. The input is
// quoted so regex metacharacters in user input match literally.
func substringMatch(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func buildSort(f domain.PropertyFilter) bson.D {
	if f.SortBy == "" {
		return bson.D{{Key: domain.DefaultSortField, Value: -1}}
	}
	direction := 1
	if f.SortDescending {
		direction = -1
	}
	return bson.D{{Key: f.SortBy, Value: direction}}
}
