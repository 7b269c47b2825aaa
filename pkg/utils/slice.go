package utils

// ChunkStrings divide uma lista em lotes de no máximo size elementos,
// preservando a ordem original. size <= 0 devolve um único lote.
func ChunkStrings(items []string, size int) [][]string {
	if len(items) == 0 {
		return nil
	}

	if size <= 0 || len(items) <= size {
		return [][]string{items}
	}

	chunks := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
