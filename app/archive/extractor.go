package archive

import (
	"encoding/json"
	"time"
)

// Extract turns one raw tweet into a normalized record. It is a pure function
// of its input: no I/O, no shared state. LocalTime is left unset; the shard
// reader fills it in through the resolver.
func Extract(tweet RawTweet) (Record, error) {
	utc, err := time.Parse(TimeLayout, tweet.CreatedAt)
	if err != nil {
		return Record{}, &ParseError{Value: "created_at timestamp", Err: err}
	}

	rec := Record{
		UTCTime: utc,
		Text:    tweet.Text,
	}

	if tweet.Entities == nil {
		return Record{}, &SchemaError{Field: "entities"}
	}
	if rec.HasHashtag, err = flagFromList(tweet.Entities.Hashtags, "entities.hashtags"); err != nil {
		return Record{}, err
	}
	if rec.HasMedia, err = flagFromList(tweet.Entities.Media, "entities.media"); err != nil {
		return Record{}, err
	}
	if rec.HasURL, err = flagFromList(tweet.Entities.URLs, "entities.urls"); err != nil {
		return Record{}, err
	}

	if tweet.Geo == nil {
		return Record{}, &SchemaError{Field: "geo"}
	}
	if coords := tweet.Geo.Coordinates; coords != nil {
		if len(*coords) < 2 {
			return Record{}, &SchemaError{Field: "geo.coordinates"}
		}
		// The pair is taken positionally, in the archive's own order.
		lat, lon := (*coords)[0], (*coords)[1]
		rec.Latitude = &lat
		rec.Longitude = &lon
	}

	if rt := tweet.RetweetedStatus; rt != nil {
		handle := rt.User.ScreenName
		name := rt.User.Name
		rec.RetweetUserHandle = &handle
		rec.RetweetDisplayName = &name
	}

	if tweet.InReplyToScreenName != nil {
		handle := *tweet.InReplyToScreenName
		rec.ReplyUserHandle = &handle
		// First matching mention wins. No match leaves the display name
		// absent while the handle stays set.
		for _, mention := range tweet.Entities.UserMentions {
			if mention.ScreenName == handle {
				name := mention.Name
				rec.ReplyDisplayName = &name
				break
			}
		}
	}

	return rec, nil
}

func flagFromList(list *[]json.RawMessage, field string) (*bool, error) {
	if list == nil {
		return nil, &SchemaError{Field: field}
	}
	flag := len(*list) > 0
	return &flag, nil
}
