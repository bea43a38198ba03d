package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"pitstop/shared/cache"
	"pitstop/shared/constant"
	"pitstop/shared/dto"
	"pitstop/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a cache tag with the given parts. The tag doubles as the
// invalidation prefix used by InvalidateCaches.
func BuildCacheKey(tag string, parts ...string) string {
	if len(parts) == 0 {
		return tag
	}

	return tag + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from a tag plus the query
// parameters and filters that shaped the result, so that distinct queries never
// collide on the same entry.
func BuildCacheKeyWithQuery(tag string, params dto.QueryParams, filter dto.FilterGroup) string {
	payload, err := json.Marshal(struct {
		Params dto.QueryParams
		Filter dto.FilterGroup
	}{params, filter})
	if err != nil {
		return BuildCacheKey(tag, fmt.Sprintf("%v|%v", params, filter))
	}

	sum := sha256.Sum256(payload)

	return BuildCacheKey(tag, hex.EncodeToString(sum[:]))
}

// InvalidateCaches drops every cache entry carrying the given tag.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, tag string) {
	if err := redisCache.Clear(ctx, tag+constant.Asterix); err != nil {
		log.Error().Err(err).Str("tag", tag).Msg("failed to invalidate caches")
	}
}
