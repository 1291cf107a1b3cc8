package sax

// Handlers is a callback-based Handler implementation. Unset callbacks are
// no-ops, so a consumer only populates the events it cares about.
type Handlers struct {
	SetDocumentLocatorHandler    SetDocumentLocatorFunc
	StartDocumentHandler         StartDocumentFunc
	EndDocumentHandler           EndDocumentFunc
	StartElementHandler          StartElementFunc
	EndElementHandler            EndElementFunc
	CharactersHandler            CharactersFunc
	IgnorableWhitespaceHandler   IgnorableWhitespaceFunc
	CommentHandler               CommentFunc
	StartCDATAHandler            StartCDATAFunc
	EndCDATAHandler              EndCDATAFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
}

// New creates a Handlers value with no callbacks registered.
func New() *Handlers {
	return &Handlers{}
}

func (s *Handlers) SetDocumentLocator(ctx Context, loc DocumentLocator) error {
	if h := s.SetDocumentLocatorHandler; h != nil {
		return h(ctx, loc)
	}
	return nil
}

func (s *Handlers) StartDocument(ctx Context, encoding string) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx, encoding)
	}
	return nil
}

func (s *Handlers) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *Handlers) StartElement(ctx Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *Handlers) EndElement(ctx Context, name string, aug Augmentation) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name, aug)
	}
	return nil
}

func (s *Handlers) Characters(ctx Context, data []byte, aug Augmentation) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data, aug)
	}
	return nil
}

func (s *Handlers) IgnorableWhitespace(ctx Context, data []byte) error {
	if h := s.IgnorableWhitespaceHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *Handlers) Comment(ctx Context, data []byte, aug Augmentation) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, data, aug)
	}
	return nil
}

func (s *Handlers) StartCDATA(ctx Context) error {
	if h := s.StartCDATAHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *Handlers) EndCDATA(ctx Context) error {
	if h := s.EndCDATAHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *Handlers) ProcessingInstruction(ctx Context, target, data string, aug Augmentation) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data, aug)
	}
	return nil
}
