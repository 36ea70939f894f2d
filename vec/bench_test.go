package vec

import "testing"

func BenchmarkPush(b *testing.B) {
	v := New[int]()
	defer v.Destroy()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Push(i)
	}
}

func BenchmarkPushPrereserved(b *testing.B) {
	v := New[int]()
	defer v.Destroy()
	_ = v.Reserve(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Push(i)
	}
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	defer v.Destroy()
	for i := 0; i < b.N; i++ {
		_ = v.Insert(0, i)
	}
}

func BenchmarkValues(b *testing.B) {
	v := New[int]()
	defer v.Destroy()
	for i := 0; i < 1024; i++ {
		_ = v.Push(i)
	}
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for val := range v.Values() {
			sum += val
		}
	}
	_ = sum
}
