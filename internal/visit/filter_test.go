package visit

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return NormalizeAll([]Record{
		{ID: "1", Name: "サウナしきじ", Comment: "聖地", Date: "2024-03-10", Rating: 5, Tags: []string{"水風呂"}, Status: StatusVisited, Area: "静岡県 静岡市"},
		{ID: "2", Name: "スカイスパYOKOHAMA", Date: "2024-01-05", Rating: 4, Status: StatusVisited, Area: "神奈川県 横浜市"},
		{ID: "3", Name: "ニューウイング", Date: "2023-11-20", Rating: 3, Tags: []string{"ロウリュ", "プール"}, Status: StatusVisited, Area: "東京都 墨田区"},
		{ID: "4", Name: "湯らっくす", Date: "2024-06-01", Status: StatusWishlist, Area: "熊本県 熊本市"},
	})
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, FilterState{Status: StatusFilterAll, MinRating: 0, Search: ""})
	if !reflect.DeepEqual(ids(got), ids(records)) {
		t.Errorf("identity filter changed the list: %v", ids(got))
	}
}

func TestFilterPredicates(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name string
		f    FilterState
		want []string
	}{
		{"status wishlist", FilterState{Status: "wishlist"}, []string{"4"}},
		{"status visited", FilterState{Status: "visited"}, []string{"1", "2", "3"}},
		{"min rating", FilterState{Status: StatusFilterAll, MinRating: 4}, []string{"1", "2"}},
		{"search name case-insensitive", FilterState{Status: StatusFilterAll, Search: "yokohama"}, []string{"2"}},
		{"search matches tags", FilterState{Status: StatusFilterAll, Search: "ロウリュ"}, []string{"3"}},
		{"search matches area", FilterState{Status: StatusFilterAll, Search: "熊本"}, []string{"4"}},
		{"search matches comment", FilterState{Status: StatusFilterAll, Search: "聖地"}, []string{"1"}},
		{"keyword trimmed", FilterState{Status: StatusFilterAll, Search: "  聖地  "}, []string{"1"}},
		{"predicates are ANDed", FilterState{Status: "visited", MinRating: 4, Search: "しきじ"}, []string{"1"}},
		{"no match", FilterState{Status: StatusFilterAll, Search: "岩盤浴"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, tt.f))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortModes(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		mode string
		want []string
	}{
		{SortRecent, []string{"4", "1", "2", "3"}},
		{SortOldest, []string{"3", "2", "1", "4"}},
		{SortRatingDesc, []string{"1", "2", "3", "4"}},
		{SortRatingAsc, []string{"4", "3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got := ids(Sort(records, tt.mode))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sort %s = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSortRecentReversesOldest(t *testing.T) {
	records := sampleRecords() // all dates distinct

	recent := ids(Sort(records, SortRecent))
	oldest := ids(Sort(records, SortOldest))

	for i := range recent {
		if recent[i] != oldest[len(oldest)-1-i] {
			t.Fatalf("recent %v is not the reverse of oldest %v", recent, oldest)
		}
	}
}

func TestSortRatingTieBreaksByDateDesc(t *testing.T) {
	records := NormalizeAll([]Record{
		{ID: "a", Date: "2024-01-01", Rating: 3},
		{ID: "b", Date: "2024-05-01", Rating: 3},
		{ID: "c", Date: "2024-03-01", Rating: 5},
	})

	got := ids(Sort(records, SortRatingDesc))
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ratingDesc = %v, want %v", got, want)
	}

	got = ids(Sort(records, SortRatingAsc))
	want = []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ratingAsc = %v, want %v", got, want)
	}
}

func TestSortMalformedDatesOrderLast(t *testing.T) {
	records := NormalizeAll([]Record{
		{ID: "bad", Date: "not-a-date"},
		{ID: "good", Date: "2024-02-02"},
	})

	got := ids(Sort(records, SortRecent))
	if got[len(got)-1] != "bad" {
		t.Errorf("recent = %v, want malformed date last", got)
	}

	got = ids(Sort(records, SortOldest))
	if got[0] != "bad" {
		t.Errorf("oldest = %v, want malformed date first", got)
	}
}

func TestSortIsStable(t *testing.T) {
	records := NormalizeAll([]Record{
		{ID: "x", Date: "2024-01-01", Rating: 2},
		{ID: "y", Date: "2024-01-01", Rating: 2},
		{ID: "z", Date: "2024-01-01", Rating: 2},
	})

	got := ids(Sort(records, SortRatingDesc))
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tied records reordered: %v", got)
	}
}

func TestFilterStateActive(t *testing.T) {
	if DefaultFilters().Active() {
		t.Error("default filters reported active")
	}

	active := []FilterState{
		{Status: StatusFilterAll, Sort: SortRecent, Search: "x"},
		{Status: "visited", Sort: SortRecent},
		{Status: StatusFilterAll, Sort: SortRecent, MinRating: 1},
		{Status: StatusFilterAll, Sort: SortOldest},
	}
	for _, f := range active {
		if !f.Active() {
			t.Errorf("filter %+v should be active", f)
		}
	}
}
