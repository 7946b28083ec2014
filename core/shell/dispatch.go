package shell

import (
	"errors"

	"github.com/josephlewis42/minish/core/logger"
)

// Dispatch routes a command line to a builtin or the launcher.
//
// An empty line is a no-op. A builtin's error is returned unchanged. External
// commands always yield nil: how the child ended is logged, not returned.
func (s *Shell) Dispatch(cl CommandLine) error {
	if len(cl) == 0 {
		return nil
	}
	command := []string(cl)
	s.record(&logger.CommandReceived{Command: command})

	if builtin, ok := Resolve(cl.Name()); ok {
		s.record(&logger.CommandRouted{
			Command:      command,
			Route:        logger.RouteBuiltin,
			ResolvedName: cl.Name(),
		})

		err := builtin(s, cl)
		if err != nil {
			kind := "unknown"
			var de *DispatchError
			if errors.As(err, &de) {
				kind = de.Kind.String()
			}
			s.record(&logger.CommandFailed{
				Command: command,
				Route:   logger.RouteBuiltin,
				Kind:    kind,
				Error:   err.Error(),
			})
		}
		return err
	}

	s.record(&logger.CommandRouted{
		Command:      command,
		Route:        logger.RouteExternal,
		ResolvedName: cl.Name(),
	})

	outcome := s.launcher().Launch(cl)
	switch outcome.Kind {
	case LaunchFailed:
		event := &logger.CommandFailed{
			Command: command,
			Route:   logger.RouteExternal,
			Kind:    string(outcome.Failure),
		}
		if outcome.Err != nil {
			event.Error = outcome.Err.Error()
		}
		s.record(event)
	default:
		s.record(&logger.ChildExited{
			Command:  command,
			Status:   outcome.Kind.String(),
			ExitCode: outcome.ExitCode,
			Signal:   int(outcome.Signal),
		})
	}

	return nil
}

// record never fails the caller, events are best effort.
func (s *Shell) record(event logger.LogType) {
	if s.Logger == nil {
		return
	}
	_ = s.Logger.Record(event)
}
