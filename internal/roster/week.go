package roster

import "time"

const dateLayout = "2006-01-02"

// DateKey 不含時間成分的日曆日期鍵（yyyy-mm-dd）
type DateKey string

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return NewDateKey(t), nil
}

// Time 以 UTC 午夜還原日期；DateKey 一律經 NewDateKey/ParseDateKey 建立，
// 格式在建構時已驗證。
func (d DateKey) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

func (d DateKey) AddDays(n int) DateKey {
	return NewDateKey(d.Time().AddDate(0, 0, n))
}

// WeekStart 回傳包含 ref 那一週的週一（同一 Location 的午夜）。
// time.Weekday 以星期日為 0：星期日必須往回 6 天，而不是往前 1 天。
func WeekStart(ref time.Time) time.Time {
	offset := int(ref.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -offset)
}

// WeekDates 回傳包含 ref 那一週的 7 個日期，週一到週日
func WeekDates(ref time.Time) [7]DateKey {
	start := WeekStart(ref)
	var week [7]DateKey
	for i := 0; i < 7; i++ {
		week[i] = NewDateKey(start.AddDate(0, 0, i))
	}
	return week
}

func weekContains(week [7]DateKey, d DateKey) bool {
	for _, k := range week {
		if k == d {
			return true
		}
	}
	return false
}
