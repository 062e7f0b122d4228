package exporter

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateCSV(testSchedule(), &buf); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}

	if lines[0] != "course,component,section,days,start,end,location" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "CIS*2750,LEC,CIS*2750*0101,M/W,8:30 AM,9:20 AM") {
		t.Errorf("unexpected lecture row: %s", lines[1])
	}

	// The online section keeps its row with empty time columns.
	if !strings.Contains(lines[2], "CIS*1300") || !strings.Contains(lines[2], "ONLINE") {
		t.Errorf("unexpected distance-ed row: %s", lines[2])
	}
}
