package archive

import (
	"encoding/json"
	"time"
)

// TimeLayout is the fixed timestamp format used by Twitter archive shards.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// RawTweet mirrors the subset of a raw archive tweet the pipeline reads.
// Pointer fields distinguish an absent key from an empty value; the archive
// format is only partially consistent about which keys are always present.
type RawTweet struct {
	CreatedAt           string       `json:"created_at"`
	Text                string       `json:"text"`
	Entities            *RawEntities `json:"entities"`
	RetweetedStatus     *RawRetweet  `json:"retweeted_status"`
	Geo                 *RawGeo      `json:"geo"`
	InReplyToScreenName *string      `json:"in_reply_to_screen_name"`
}

// RawEntities holds the entity lists of a tweet. The hashtags, media and urls
// lists are assumed to always be present; their contents are never inspected
// beyond emptiness, so elements stay raw.
type RawEntities struct {
	Hashtags     *[]json.RawMessage `json:"hashtags"`
	Media        *[]json.RawMessage `json:"media"`
	URLs         *[]json.RawMessage `json:"urls"`
	UserMentions []RawUser          `json:"user_mentions"`
}

type RawUser struct {
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

type RawRetweet struct {
	User RawUser `json:"user"`
}

type RawGeo struct {
	Coordinates *[]float64 `json:"coordinates"`
}

// Record is the normalized per-tweet row produced by extraction. Optional
// values are pointers; nil means absent. The three Has* flags start out as
// explicit true/false and are collapsed to present/absent by the assembler.
//
// Invariants: RetweetUserHandle and RetweetDisplayName are jointly
// present/absent, as are Latitude and Longitude. ReplyDisplayName may be nil
// while ReplyUserHandle is set (the mentioned-user lookup can fail). LocalTime
// is only set when both coordinates are present and resolve to a known zone.
type Record struct {
	UTCTime            time.Time
	LocalTime          *time.Time
	Latitude           *float64
	Longitude          *float64
	HasHashtag         *bool
	HasMedia           *bool
	HasURL             *bool
	RetweetUserHandle  *string
	RetweetDisplayName *string
	ReplyUserHandle    *string
	ReplyDisplayName   *string
	Text               string
}

// Table is the assembled collection of records, sorted descending by UTCTime.
// It is built once per import and not mutated afterwards.
type Table struct {
	Records []Record
}

func (t *Table) Len() int {
	return len(t.Records)
}
