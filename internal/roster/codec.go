package roster

import "strings"

// 拖放兩端約定的識別前綴：拖曳項為 worker-<id>，放置格為 cell-<resourceID>-<date>。
// 班別不在識別字串內，由 Store 目前選擇的班別提供。
const (
	sourcePrefix = "worker"
	targetPrefix = "cell"
)

func EncodeSource(workerID string) string {
	return sourcePrefix + "-" + workerID
}

func EncodeTarget(resourceID string, date DateKey) string {
	return targetPrefix + "-" + resourceID + "-" + string(date)
}

// DecodeSource 解出拖曳項所代表的人員 id
func DecodeSource(draggableID string) (string, error) {
	rest, ok := strings.CutPrefix(draggableID, sourcePrefix+"-")
	if !ok || rest == "" {
		return "", &MalformedIdentifierError{ID: draggableID, Reason: "expected worker-<id>"}
	}
	return rest, nil
}

// DecodeTarget 解出放置格的機台 id 與日期。
// 日期是固定長度的尾碼（yyyy-mm-dd 本身含 '-'，不能從左邊切）。
func DecodeTarget(droppableID string) (string, DateKey, error) {
	malformed := func(reason string) (string, DateKey, error) {
		return "", "", &MalformedIdentifierError{ID: droppableID, Reason: reason}
	}

	rest, ok := strings.CutPrefix(droppableID, targetPrefix+"-")
	if !ok {
		return malformed("expected cell-<resourceID>-<date>")
	}
	if len(rest) < len(dateLayout)+2 {
		return malformed("too short for cell-<resourceID>-<date>")
	}
	sep := len(rest) - len(dateLayout) - 1
	if rest[sep] != '-' {
		return malformed("date suffix not separated")
	}
	resourceID := rest[:sep]
	if resourceID == "" {
		return malformed("empty resource id")
	}
	date, err := ParseDateKey(rest[sep+1:])
	if err != nil {
		return malformed("invalid date suffix")
	}
	return resourceID, date, nil
}
