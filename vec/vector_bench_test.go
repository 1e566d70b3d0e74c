package vec

import "testing"

func BenchmarkPushBack(b *testing.B) {
	v := New[int]()
	defer v.Close()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPushBackPreallocated(b *testing.B) {
	v := New[int]()
	defer v.Close()
	if err := v.Reserve(b.N); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPushBackMapped(b *testing.B) {
	v := New[int64](Mapped())
	defer v.Close()
	b.ReportAllocs()
	for i := int64(0); i < int64(b.N); i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	defer v.Close()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := v.Insert(0, i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	v := New[int]()
	defer v.Close()
	if err := v.Resize(b.N); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Erase(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAt(b *testing.B) {
	v := New[int]()
	defer v.Close()
	if err := v.Resize(1024); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.At(i % 1024)
	}
}
