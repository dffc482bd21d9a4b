package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter builders. All functions are pure and return selectors ready to be
// composed into a single bson.M by the caller.

// SubstringSearch matches documents where any of the given fields contains
// text, case-insensitively. User input is escaped so regex metacharacters
// are matched literally.
func SubstringSearch(fields []string, text string) bson.M {
	pattern := primitive.Regex{
		Pattern: regexp.QuoteMeta(text),
		Options: "i",
	}
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: pattern})
	}
	return bson.M{"$or": or}
}

// DateOnOrBefore matches documents whose field is lexicographically at or
// before the given ISO date. Correct only because all stored values share
// the layouts in the clock package.
func DateOnOrBefore(field string, date string) bson.M {
	return bson.M{field: bson.M{"$lte": date}}
}

func DateEquals(field string, date string) bson.M {
	return bson.M{field: date}
}

// MonthPrefix matches documents whose field starts with the given "YYYY-MM"
// month. The pattern is anchored so a month can never match elsewhere in
// the value.
func MonthPrefix(field string, yearMonth string) bson.M {
	return bson.M{field: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(yearMonth),
	}}
}
