package tables

import (
	"reflect"
	"testing"
)

func TestBuildUniformRows(t *testing.T) {
	b := NewBuilder()
	table, ok := b.Build([]string{
		"姓名  年龄  城市",
		"张三  30  北京",
		"李四  25  上海",
	})
	if !ok {
		t.Fatal("expected a table")
	}

	want := [][]string{
		{"姓名", "年龄", "城市"},
		{"张三", "30", "北京"},
		{"李四", "25", "上海"},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("Rows = %v, want %v", table.Rows, want)
	}
}

func TestBuildTabDelimited(t *testing.T) {
	b := NewBuilder()
	table, ok := b.Build([]string{"a\tb", "c\td"})
	if !ok {
		t.Fatal("expected a table")
	}
	if table.ColCount() != 2 || table.RowCount() != 2 {
		t.Errorf("got %dx%d, want 2x2", table.RowCount(), table.ColCount())
	}
}

func TestBuildPadsShortRows(t *testing.T) {
	b := NewBuilder()
	table, ok := b.Build([]string{
		"a  b  c",
		"d  e  f",
		"g  h",
	})
	if !ok {
		t.Fatal("expected a table")
	}

	want := []string{"g", "h", ""}
	if !reflect.DeepEqual(table.Rows[2], want) {
		t.Errorf("short row = %v, want padded %v", table.Rows[2], want)
	}
}

func TestBuildMergesOverflowIntoLastCell(t *testing.T) {
	b := NewBuilder()
	table, ok := b.Build([]string{
		"a  b",
		"c  d",
		"e  f  extra  cells",
	})
	if !ok {
		t.Fatal("expected a table")
	}

	want := []string{"e", "f extra cells"}
	if !reflect.DeepEqual(table.Rows[2], want) {
		t.Errorf("long row = %v, want merged %v", table.Rows[2], want)
	}
}

func TestBuildRejectsSingleColumn(t *testing.T) {
	b := NewBuilder()
	if _, ok := b.Build([]string{"one", "two", "three"}); ok {
		t.Error("rows with one segment each should not form a table")
	}
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	b := NewBuilder()
	if _, ok := b.Build(nil); ok {
		t.Error("empty input should not form a table")
	}
}

func TestBuildModeTieBreaksSmaller(t *testing.T) {
	b := NewBuilder()
	table, ok := b.Build([]string{
		"a  b",
		"c  d  e",
	})
	if !ok {
		t.Fatal("expected a table")
	}
	if table.ColCount() != 2 {
		t.Errorf("ColCount = %d, want tie broken toward 2", table.ColCount())
	}
}

func TestBuildCustomMinColumns(t *testing.T) {
	config := DefaultBuilderConfig()
	config.MinColumns = 3
	b := NewBuilderWithConfig(config)

	if _, ok := b.Build([]string{"a  b", "c  d"}); ok {
		t.Error("two-column group should be rejected with MinColumns 3")
	}
	if _, ok := b.Build([]string{"a  b  c", "d  e  f"}); !ok {
		t.Error("three-column group should be accepted")
	}
}
